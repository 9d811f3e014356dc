package service

import (
	"context"

	"balloon-flights-backend/internal/database/models"
	"balloon-flights-backend/internal/policy"
	"balloon-flights-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FlightServiceInterface defines the interface for flight service
type FlightServiceInterface interface {
	Submit(ctx context.Context, actor policy.Actor, req *SubmitFlightRequest) (*models.Flight, error)
	ListFor(ctx context.Context, actor policy.Actor) ([]models.Flight, error)
	ListAll(ctx context.Context, actor policy.Actor) ([]models.Flight, error)
	Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.Flight, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *UpdateFlightRequest) (*models.Flight, error)
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

// CatalogServiceInterface defines the interface for catalog service
type CatalogServiceInterface interface {
	CreatePilot(ctx context.Context, req *PilotRequest) (*models.Pilot, error)
	GetPilot(ctx context.Context, id uuid.UUID) (*models.Pilot, error)
	ListPilots(ctx context.Context) ([]models.Pilot, error)
	UpdatePilot(ctx context.Context, id uuid.UUID, req *PilotRequest) (*models.Pilot, error)
	DeletePilot(ctx context.Context, id uuid.UUID) error

	CreateBalloon(ctx context.Context, req *BalloonRequest) (*models.Balloon, error)
	GetBalloon(ctx context.Context, id uuid.UUID) (*models.Balloon, error)
	ListBalloons(ctx context.Context) ([]models.Balloon, error)
	UpdateBalloon(ctx context.Context, id uuid.UUID, req *BalloonRequest) (*models.Balloon, error)
	DeleteBalloon(ctx context.Context, id uuid.UUID) error

	CreateAirways(ctx context.Context, req *AirwaysRequest) (*models.Airways, error)
	GetAirways(ctx context.Context, id uuid.UUID) (*models.Airways, error)
	ListAirways(ctx context.Context) ([]models.Airways, error)
	UpdateAirways(ctx context.Context, id uuid.UUID, req *AirwaysRequest) (*models.Airways, error)
	DeleteAirways(ctx context.Context, id uuid.UUID) error

	CreateAffiliation(ctx context.Context, req *AirwaysPilotRequest) (*models.AirwaysPilot, error)
	GetAffiliation(ctx context.Context, id uuid.UUID) (*models.AirwaysPilot, error)
	ListAffiliations(ctx context.Context, filter repository.AirwaysPilotFilter) ([]models.AirwaysPilot, error)
	ListAirwaysPilots(ctx context.Context, airwaysID uuid.UUID) ([]models.AirwaysPilot, error)
	DeleteAffiliation(ctx context.Context, id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
