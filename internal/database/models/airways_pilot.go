package models

import (
	"fmt"

	"github.com/google/uuid"
)

// AirwaysPilot affiliates one pilot with one carrier. It has no existence
// independent of either side.
type AirwaysPilot struct {
	BaseModel
	PilotID   uuid.UUID `json:"pilot_id" gorm:"type:uuid;not null;index" validate:"required"`
	AirwaysID uuid.UUID `json:"airways_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Pilot   *Pilot   `json:"pilot,omitempty" gorm:"foreignKey:PilotID;constraint:OnDelete:CASCADE"`
	Airways *Airways `json:"airways,omitempty" gorm:"foreignKey:AirwaysID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AirwaysPilot
func (AirwaysPilot) TableName() string {
	return "airways_pilots"
}

// String renders "Pilot - Airways"; relations must be preloaded for the full label.
func (ap AirwaysPilot) String() string {
	pilot := ap.PilotID.String()
	if ap.Pilot != nil {
		pilot = ap.Pilot.String()
	}
	airways := ap.AirwaysID.String()
	if ap.Airways != nil {
		airways = ap.Airways.String()
	}
	return fmt.Sprintf("%s - %s", pilot, airways)
}
