package models

import (
	"github.com/google/uuid"
)

// Flight is a recorded balloon flight. OwnerID is system-assigned from the
// submitting actor and is never bound from request input.
type Flight struct {
	BaseModel
	Code           string    `json:"code" gorm:"size:255;not null" validate:"required,max=255"`
	TakeoffAirport string    `json:"takeoff_airport" gorm:"size:255;not null;index" validate:"required,max=255"`
	LandingAirport string    `json:"landing_airport" gorm:"size:255;not null" validate:"required,max=255"`
	OwnerID        uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Photo          *string   `json:"photo,omitempty" gorm:"size:500"`
	BalloonID      uuid.UUID `json:"balloon_id" gorm:"type:uuid;not null;index" validate:"required"`
	PilotID        uuid.UUID `json:"pilot_id" gorm:"type:uuid;not null;index" validate:"required"`
	AirwaysID      uuid.UUID `json:"airways_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Owner   *User    `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Balloon *Balloon `json:"balloon,omitempty" gorm:"foreignKey:BalloonID;constraint:OnDelete:CASCADE"`
	Pilot   *Pilot   `json:"pilot,omitempty" gorm:"foreignKey:PilotID;constraint:OnDelete:CASCADE"`
	Airways *Airways `json:"airways,omitempty" gorm:"foreignKey:AirwaysID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Flight
func (Flight) TableName() string {
	return "flights"
}

func (f Flight) String() string {
	return f.Code
}

// OwnedBy reports whether userID is the recorded owner
func (f *Flight) OwnedBy(userID uuid.UUID) bool {
	return f != nil && userID != uuid.Nil && f.OwnerID == userID
}
