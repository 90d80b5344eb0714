package db_models

import (
	"github.com/google/uuid"
	"time"
)

type DailyActivity struct {
	BaseModel
	ActivityID    uuid.UUID `gorm:"index"`
	Date          time.Time
	NeedHotel     bool
	HotelCheckIn  *time.Time
	HotelCheckOut *time.Time
	HotelName     string
	HotelAddress  string

	ActivityItems []ActivityItem
}

type ActivityItem struct {
	BaseModel
	DailyActivityID uuid.UUID `gorm:"index"`
	Name            string
	// "order" is a reserved word in most SQL dialects.
	Order int `gorm:"column:item_order"`
}
