package repository

import (
	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BalloonRepository handles database operations for balloons
type BalloonRepository struct {
	db *gorm.DB
}

// NewBalloonRepository creates a new balloon repository
func NewBalloonRepository(db *gorm.DB) *BalloonRepository {
	return &BalloonRepository{db: db}
}

// Create creates a new balloon
func (r *BalloonRepository) Create(balloon *models.Balloon) error {
	return translateWriteError("balloon", r.db.Create(balloon).Error)
}

// GetByID retrieves a balloon by ID
func (r *BalloonRepository) GetByID(id uuid.UUID) (*models.Balloon, error) {
	var balloon models.Balloon
	err := r.db.First(&balloon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &balloon, nil
}

// GetAll retrieves all balloons ordered by type and manufacturer
func (r *BalloonRepository) GetAll() ([]models.Balloon, error) {
	var balloons []models.Balloon
	err := r.db.Order("type ASC, manufacturer_name ASC").Find(&balloons).Error
	return balloons, err
}

// Update updates a balloon
func (r *BalloonRepository) Update(balloon *models.Balloon) error {
	return translateWriteError("balloon", r.db.Save(balloon).Error)
}

// Delete deletes a balloon, cascading to its flights
func (r *BalloonRepository) Delete(id uuid.UUID) error {
	return deleteWithCascade(r.db, "balloons", &models.Balloon{}, id)
}

// Exists checks if a balloon exists by ID
func (r *BalloonRepository) Exists(id uuid.UUID) (bool, error) {
	return exists(r.db, &models.Balloon{}, id)
}
