package testutils

import (
	"fmt"
	"time"

	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The hash is not a valid bcrypt hash.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel:    models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username:     "user-" + id.String()[:8],
		PasswordHash: "not-a-hash",
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// Staff creates a user with the staff flag set
func (f *UserFactory) Staff() *models.User {
	user := f.Create()
	user.IsStaff = true
	return user
}

// PilotFactory provides methods to create test Pilot data
type PilotFactory struct{}

// NewPilotFactory creates a new PilotFactory
func NewPilotFactory() *PilotFactory {
	return &PilotFactory{}
}

// Create creates a test Pilot with default values
func (f *PilotFactory) Create() *models.Pilot {
	return &models.Pilot{
		BaseModel:   newBase(),
		FirstName:   "Ana",
		LastName:    "Petrova",
		YearOfBirth: 1985,
		TotalHours:  1200,
		Role:        "Captain",
	}
}

// WithName sets a custom first and last name
func (f *PilotFactory) WithName(first, last string) *models.Pilot {
	pilot := f.Create()
	pilot.FirstName = first
	pilot.LastName = last
	return pilot
}

// BalloonFactory provides methods to create test Balloon data
type BalloonFactory struct{}

// NewBalloonFactory creates a new BalloonFactory
func NewBalloonFactory() *BalloonFactory {
	return &BalloonFactory{}
}

// Create creates a test Balloon with default values
func (f *BalloonFactory) Create() *models.Balloon {
	return &models.Balloon{
		BaseModel:        newBase(),
		Type:             "Large",
		ManufacturerName: "Cameron",
		MaxPassengers:    12,
	}
}

// AirwaysFactory provides methods to create test Airways data
type AirwaysFactory struct{}

// NewAirwaysFactory creates a new AirwaysFactory
func NewAirwaysFactory() *AirwaysFactory {
	return &AirwaysFactory{}
}

// Create creates a test Airways with default values
func (f *AirwaysFactory) Create() *models.Airways {
	return &models.Airways{
		BaseModel:   newBase(),
		Name:        "Balkan Air",
		YearFounded: 1999,
		CoverageEU:  true,
	}
}

// WithName sets a custom carrier name
func (f *AirwaysFactory) WithName(name string) *models.Airways {
	airways := f.Create()
	airways.Name = name
	return airways
}

// AirwaysPilotFactory provides methods to create test affiliation data
type AirwaysPilotFactory struct{}

// NewAirwaysPilotFactory creates a new AirwaysPilotFactory
func NewAirwaysPilotFactory() *AirwaysPilotFactory {
	return &AirwaysPilotFactory{}
}

// Create creates an affiliation between pilotID and airwaysID
func (f *AirwaysPilotFactory) Create(pilotID, airwaysID uuid.UUID) *models.AirwaysPilot {
	return &models.AirwaysPilot{
		BaseModel: newBase(),
		PilotID:   pilotID,
		AirwaysID: airwaysID,
	}
}

// FlightFactory provides methods to create test Flight data
type FlightFactory struct {
	seq int
}

// NewFlightFactory creates a new FlightFactory
func NewFlightFactory() *FlightFactory {
	return &FlightFactory{}
}

// Create creates a flight from Skopje with a unique code. References are left unset.
func (f *FlightFactory) Create() *models.Flight {
	f.seq++
	return &models.Flight{
		BaseModel:      newBase(),
		Code:           fmt.Sprintf("MK%03d", f.seq),
		TakeoffAirport: "Skopje",
		LandingAirport: "Ohrid",
	}
}

// WithRefs creates a flight referencing the given owner and catalog rows
func (f *FlightFactory) WithRefs(ownerID, balloonID, pilotID, airwaysID uuid.UUID) *models.Flight {
	flight := f.Create()
	flight.OwnerID = ownerID
	flight.BalloonID = balloonID
	flight.PilotID = pilotID
	flight.AirwaysID = airwaysID
	return flight
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Pilot        *PilotFactory
	Balloon      *BalloonFactory
	Airways      *AirwaysFactory
	AirwaysPilot *AirwaysPilotFactory
	Flight       *FlightFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Pilot:        NewPilotFactory(),
		Balloon:      NewBalloonFactory(),
		Airways:      NewAirwaysFactory(),
		AirwaysPilot: NewAirwaysPilotFactory(),
		Flight:       NewFlightFactory(),
	}
}

// CreateCatalog builds an owner, a pilot, a balloon and a carrier that a flight can reference
func (fs *FactorySet) CreateCatalog() (*models.User, *models.Pilot, *models.Balloon, *models.Airways) {
	return fs.User.Create(), fs.Pilot.Create(), fs.Balloon.Create(), fs.Airways.Create()
}
