package repository

import (
	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AirwaysPilotFilter narrows affiliation lookups; zero fields are ignored.
type AirwaysPilotFilter struct {
	PilotID   uuid.UUID
	AirwaysID uuid.UUID
}

// AirwaysPilotRepository handles database operations for pilot-carrier affiliations
type AirwaysPilotRepository struct {
	db *gorm.DB
}

// NewAirwaysPilotRepository creates a new affiliation repository
func NewAirwaysPilotRepository(db *gorm.DB) *AirwaysPilotRepository {
	return &AirwaysPilotRepository{db: db}
}

// Create creates a new affiliation. Unknown pilot or carrier ids fail with an IntegrityError.
func (r *AirwaysPilotRepository) Create(affiliation *models.AirwaysPilot) error {
	return translateWriteError("airways-pilot affiliation", r.db.Omit("Pilot", "Airways").Create(affiliation).Error)
}

// GetByID retrieves an affiliation with its pilot and carrier
func (r *AirwaysPilotRepository) GetByID(id uuid.UUID) (*models.AirwaysPilot, error) {
	var affiliation models.AirwaysPilot
	err := r.db.Preload("Pilot").Preload("Airways").First(&affiliation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &affiliation, nil
}

// Find retrieves affiliations matching filter
func (r *AirwaysPilotRepository) Find(filter AirwaysPilotFilter) ([]models.AirwaysPilot, error) {
	query := r.db.Model(&models.AirwaysPilot{}).Preload("Pilot").Preload("Airways")
	if filter.PilotID != uuid.Nil {
		query = query.Where("pilot_id = ?", filter.PilotID)
	}
	if filter.AirwaysID != uuid.Nil {
		query = query.Where("airways_id = ?", filter.AirwaysID)
	}

	affiliations := []models.AirwaysPilot{}
	err := query.Order("created_at ASC").Find(&affiliations).Error
	return affiliations, err
}

// Delete deletes an affiliation
func (r *AirwaysPilotRepository) Delete(id uuid.UUID) error {
	return deleteWithCascade(r.db, "airways_pilots", &models.AirwaysPilot{}, id)
}
