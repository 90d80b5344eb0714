package db_models

type Branch struct {
	BaseModel
	Name string `gorm:"index"`

	Activities []Activity
}
