package db_models

import (
	"github.com/google/uuid"
	"time"
)

type ActivityType string

const (
	ActivityTypeProspectMeeting ActivityType = "PROSPECT_MEETING"
	ActivityTypeEscortTeam      ActivityType = "ESCORT_TEAM"
	ActivityTypeBusinessTrip    ActivityType = "PERJALANAN_DINAS"
	ActivityTypeGuestInvitation ActivityType = "TAMU_UNDANGAN"
	ActivityTypeRetentionTeam   ActivityType = "RETENTION_TEAM"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeProspectMeeting, ActivityTypeEscortTeam,
		ActivityTypeBusinessTrip, ActivityTypeGuestInvitation, ActivityTypeRetentionTeam:
		return true
	}
	return false
}

// IsTrip reports whether the type carries the trip field group and
// daily itinerary children.
func (t ActivityType) IsTrip() bool { return t == ActivityTypeBusinessTrip }

type TransportationType string

const (
	TransportationFlight TransportationType = "FLIGHT"
	TransportationFerry  TransportationType = "FERRY"
	TransportationTrain  TransportationType = "TRAIN"
)

func (t TransportationType) Valid() bool {
	switch t {
	case TransportationFlight, TransportationFerry, TransportationTrain:
		return true
	}
	return false
}

// TripDetails is the PERJALANAN_DINAS field group. The columns live on the
// activities table; ActivityType governs whether they are populated.
type TripDetails struct {
	BirthDate          *time.Time
	IDCard             string
	DepartureDate      *time.Time
	TransportationType TransportationType
	TransportationName string
	TransportationFrom string
	Destination        string
	BookingFlightNo    string
	DepartureFrom      string
	ArrivalTo          string
}

type Activity struct {
	BaseModel
	Title        string
	Description  string
	Date         time.Time `gorm:"index"`
	Time         string
	ActivityType ActivityType
	BranchID     uuid.UUID
	EmployeeID   uuid.UUID `gorm:"index"`
	CreatedBy    uuid.UUID `gorm:"index"`

	// Reschedule provenance. Strikethrough marks a superseded record;
	// RescheduledTo/TimeTo point at its replacement's slot, and
	// RescheduledFrom/TimeFrom on a replacement point back at the original's.
	Strikethrough       bool
	RescheduledFrom     *time.Time
	RescheduledTimeFrom string
	RescheduledTo       *time.Time
	RescheduledTimeTo   string

	Trip TripDetails `gorm:"embedded"`

	User            User   `gorm:"foreignKey:CreatedBy"`
	Branch          Branch
	Employee        Employee
	DailyActivities []DailyActivity
}
