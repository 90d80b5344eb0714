package db_models

type Employee struct {
	BaseModel
	Name     string `gorm:"index"`
	Email    string
	Position string
	Phone    string

	Activities []Activity
}
