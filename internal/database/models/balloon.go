package models

import "fmt"

// Balloon represents a hot-air balloon that can be flown
type Balloon struct {
	BaseModel
	Type             string `json:"type" gorm:"size:255;not null" validate:"required,max=255"`
	ManufacturerName string `json:"manufacturer_name" gorm:"size:255;not null" validate:"required,max=255"`
	MaxPassengers    int    `json:"max_passengers" gorm:"not null;check:chk_balloons_max_passengers,max_passengers > 0" validate:"gt=0"`
}

// TableName returns the table name for Balloon
func (Balloon) TableName() string {
	return "balloons"
}

func (b Balloon) String() string {
	return fmt.Sprintf("%s - %s", b.Type, b.ManufacturerName)
}
