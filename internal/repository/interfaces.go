package repository

import (
	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Delete(id uuid.UUID) error
}

// PilotRepositoryInterface defines the interface for pilot repository operations
type PilotRepositoryInterface interface {
	Create(pilot *models.Pilot) error
	GetByID(id uuid.UUID) (*models.Pilot, error)
	GetAll() ([]models.Pilot, error)
	Update(pilot *models.Pilot) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
}

// BalloonRepositoryInterface defines the interface for balloon repository operations
type BalloonRepositoryInterface interface {
	Create(balloon *models.Balloon) error
	GetByID(id uuid.UUID) (*models.Balloon, error)
	GetAll() ([]models.Balloon, error)
	Update(balloon *models.Balloon) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
}

// AirwaysRepositoryInterface defines the interface for airways repository operations
type AirwaysRepositoryInterface interface {
	Create(airways *models.Airways) error
	GetByID(id uuid.UUID) (*models.Airways, error)
	GetAll() ([]models.Airways, error)
	Update(airways *models.Airways) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
}

// AirwaysPilotRepositoryInterface defines the interface for affiliation repository operations
type AirwaysPilotRepositoryInterface interface {
	Create(affiliation *models.AirwaysPilot) error
	GetByID(id uuid.UUID) (*models.AirwaysPilot, error)
	Find(filter AirwaysPilotFilter) ([]models.AirwaysPilot, error)
	Delete(id uuid.UUID) error
}

// FlightRepositoryInterface defines the interface for flight repository operations
type FlightRepositoryInterface interface {
	Create(flight *models.Flight) error
	GetByID(id uuid.UUID) (*models.Flight, error)
	Find(filter FlightFilter) ([]models.Flight, error)
	Count(filter FlightFilter) (int64, error)
	Update(flight *models.Flight) error
	Delete(id uuid.UUID) error
}
