// Package policy decides what an authenticated actor may do with a flight.
// Decisions are pure functions of the actor and the flight record.
package policy

import (
	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
)

// Actor is the authenticated user on whose behalf an operation runs.
// It is passed explicitly to every call that needs it.
type Actor struct {
	UserID   uuid.UUID
	Username string
	IsStaff  bool
}

// Anonymous reports whether the actor carries no identity
func (a Actor) Anonymous() bool {
	return a.UserID == uuid.Nil
}

// CanViewOrChange is true iff the actor owns the flight. Staff status grants nothing here.
// A nil flight yields false.
func CanViewOrChange(actor Actor, flight *models.Flight) bool {
	return flight.OwnedBy(actor.UserID)
}

// CanDelete is false for every actor and flight.
func CanDelete(Actor, *models.Flight) bool {
	return false
}
