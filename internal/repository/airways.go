package repository

import (
	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AirwaysRepository handles database operations for carriers
type AirwaysRepository struct {
	db *gorm.DB
}

// NewAirwaysRepository creates a new airways repository
func NewAirwaysRepository(db *gorm.DB) *AirwaysRepository {
	return &AirwaysRepository{db: db}
}

// Create creates a new carrier
func (r *AirwaysRepository) Create(airways *models.Airways) error {
	return translateWriteError("airways", r.db.Create(airways).Error)
}

// GetByID retrieves a carrier by ID
func (r *AirwaysRepository) GetByID(id uuid.UUID) (*models.Airways, error) {
	var airways models.Airways
	err := r.db.First(&airways, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &airways, nil
}

// GetAll retrieves all carriers ordered by name
func (r *AirwaysRepository) GetAll() ([]models.Airways, error) {
	var carriers []models.Airways
	err := r.db.Order("name ASC").Find(&carriers).Error
	return carriers, err
}

// Update updates a carrier
func (r *AirwaysRepository) Update(airways *models.Airways) error {
	return translateWriteError("airways", r.db.Save(airways).Error)
}

// Delete deletes a carrier, cascading to affiliations and flights
func (r *AirwaysRepository) Delete(id uuid.UUID) error {
	return deleteWithCascade(r.db, "airways", &models.Airways{}, id)
}

// Exists checks if a carrier exists by ID
func (r *AirwaysRepository) Exists(id uuid.UUID) (bool, error) {
	return exists(r.db, &models.Airways{}, id)
}
