package models

import "fmt"

// Pilot represents a balloon pilot
type Pilot struct {
	BaseModel
	FirstName   string `json:"first_name" gorm:"size:255;not null" validate:"required,max=255"`
	LastName    string `json:"last_name" gorm:"size:255;not null" validate:"required,max=255"`
	YearOfBirth int    `json:"year_of_birth" gorm:"not null"`
	TotalHours  int    `json:"total_hours" gorm:"not null;check:chk_pilots_total_hours,total_hours >= 0" validate:"gte=0"`
	Role        string `json:"role" gorm:"size:255;not null" validate:"required,max=255"`
}

// TableName returns the table name for Pilot
func (Pilot) TableName() string {
	return "pilots"
}

func (p Pilot) String() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}
