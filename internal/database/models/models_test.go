package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDisplayLabels(t *testing.T) {
	pilot := Pilot{FirstName: "PilotName", LastName: "PilotLastName", YearOfBirth: 2000, TotalHours: 500, Role: "Captain"}
	balloon := Balloon{Type: "Hot Air", ManufacturerName: "XYZ Balloons", MaxPassengers: 4}
	airways := Airways{Name: "Airways Inc.", YearFounded: 2020, CoverageEU: true}
	flight := Flight{Code: "ABC123", TakeoffAirport: "Skopje", LandingAirport: "London"}

	assert.Equal(t, "PilotName PilotLastName", pilot.String())
	assert.Equal(t, "Hot Air - XYZ Balloons", balloon.String())
	assert.Equal(t, "Airways Inc.", airways.String())
	assert.Equal(t, "ABC123", flight.String())

	affiliation := AirwaysPilot{Pilot: &pilot, Airways: &airways}
	assert.Equal(t, "PilotName PilotLastName - Airways Inc.", affiliation.String())
}

func TestAirwaysPilotLabelWithoutRelations(t *testing.T) {
	pilotID := uuid.New()
	airwaysID := uuid.New()
	affiliation := AirwaysPilot{PilotID: pilotID, AirwaysID: airwaysID}
	assert.Equal(t, pilotID.String()+" - "+airwaysID.String(), affiliation.String())
}

func TestFlightOwnedBy(t *testing.T) {
	owner := uuid.New()
	flight := &Flight{OwnerID: owner}

	assert.True(t, flight.OwnedBy(owner))
	assert.False(t, flight.OwnedBy(uuid.New()))
	assert.False(t, flight.OwnedBy(uuid.Nil))

	var missing *Flight
	assert.False(t, missing.OwnedBy(owner))
}

func TestBeforeCreateAssignsID(t *testing.T) {
	pilot := &Pilot{}
	assert.NoError(t, pilot.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, pilot.ID)

	existing := uuid.New()
	balloon := &Balloon{BaseModel: BaseModel{ID: existing}}
	assert.NoError(t, balloon.BeforeCreate(nil))
	assert.Equal(t, existing, balloon.ID)
}

func TestValidationTags(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(Pilot{FirstName: "A", LastName: "B", Role: "Captain"}))
	assert.Error(t, v.Struct(Pilot{FirstName: "A", LastName: "B", Role: "Captain", TotalHours: -1}))
	assert.Error(t, v.Struct(Balloon{Type: "Hot Air", ManufacturerName: "XYZ", MaxPassengers: 0}))
	assert.Error(t, v.Struct(Airways{}))
	assert.Error(t, v.Struct(AirwaysPilot{PilotID: uuid.New()}))
}
