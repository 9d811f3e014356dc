package repository

import (
	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PilotRepository handles database operations for pilots
type PilotRepository struct {
	db *gorm.DB
}

// NewPilotRepository creates a new pilot repository
func NewPilotRepository(db *gorm.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

// Create creates a new pilot
func (r *PilotRepository) Create(pilot *models.Pilot) error {
	return translateWriteError("pilot", r.db.Create(pilot).Error)
}

// GetByID retrieves a pilot by ID
func (r *PilotRepository) GetByID(id uuid.UUID) (*models.Pilot, error) {
	var pilot models.Pilot
	err := r.db.First(&pilot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pilot, nil
}

// GetAll retrieves all pilots ordered by last and first name
func (r *PilotRepository) GetAll() ([]models.Pilot, error) {
	var pilots []models.Pilot
	err := r.db.Order("last_name ASC, first_name ASC").Find(&pilots).Error
	return pilots, err
}

// Update updates a pilot
func (r *PilotRepository) Update(pilot *models.Pilot) error {
	return translateWriteError("pilot", r.db.Save(pilot).Error)
}

// Delete deletes a pilot, cascading to affiliations and flights
func (r *PilotRepository) Delete(id uuid.UUID) error {
	return deleteWithCascade(r.db, "pilots", &models.Pilot{}, id)
}

// Exists checks if a pilot exists by ID
func (r *PilotRepository) Exists(id uuid.UUID) (bool, error) {
	return exists(r.db, &models.Pilot{}, id)
}
