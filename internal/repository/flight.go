package repository

import (
	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlightFilter narrows flight lookups; zero fields are ignored.
type FlightFilter struct {
	OwnerID        uuid.UUID
	TakeoffAirport string
	BalloonID      uuid.UUID
	PilotID        uuid.UUID
	AirwaysID      uuid.UUID
}

func (f FlightFilter) apply(query *gorm.DB) *gorm.DB {
	if f.OwnerID != uuid.Nil {
		query = query.Where("owner_id = ?", f.OwnerID)
	}
	if f.TakeoffAirport != "" {
		query = query.Where("takeoff_airport = ?", f.TakeoffAirport)
	}
	if f.BalloonID != uuid.Nil {
		query = query.Where("balloon_id = ?", f.BalloonID)
	}
	if f.PilotID != uuid.Nil {
		query = query.Where("pilot_id = ?", f.PilotID)
	}
	if f.AirwaysID != uuid.Nil {
		query = query.Where("airways_id = ?", f.AirwaysID)
	}
	return query
}

// FlightRepository handles database operations for flights
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Create inserts a flight in a single statement. Dangling balloon, pilot,
// airways or owner references fail with an IntegrityError and insert nothing.
func (r *FlightRepository) Create(flight *models.Flight) error {
	err := r.db.Omit("Owner", "Balloon", "Pilot", "Airways").Create(flight).Error
	return translateWriteError("flight", err)
}

// GetByID retrieves a flight with its balloon, pilot and carrier
func (r *FlightRepository) GetByID(id uuid.UUID) (*models.Flight, error) {
	var flight models.Flight
	err := r.withRelations(r.db).First(&flight, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

// Find retrieves flights matching filter in insertion order
func (r *FlightRepository) Find(filter FlightFilter) ([]models.Flight, error) {
	flights := []models.Flight{}
	query := filter.apply(r.withRelations(r.db.Model(&models.Flight{})))
	err := query.Order("created_at ASC").Find(&flights).Error
	return flights, err
}

// Count returns the number of flights matching filter
func (r *FlightRepository) Count(filter FlightFilter) (int64, error) {
	var total int64
	err := filter.apply(r.db.Model(&models.Flight{})).Count(&total).Error
	return total, err
}

// Update saves flight columns. Relations are never upserted from here.
func (r *FlightRepository) Update(flight *models.Flight) error {
	err := r.db.Omit("Owner", "Balloon", "Pilot", "Airways").Save(flight).Error
	return translateWriteError("flight", err)
}

// Delete deletes a flight
func (r *FlightRepository) Delete(id uuid.UUID) error {
	return deleteWithCascade(r.db, "flights", &models.Flight{}, id)
}

func (r *FlightRepository) withRelations(query *gorm.DB) *gorm.DB {
	return query.Preload("Balloon").Preload("Pilot").Preload("Airways")
}
