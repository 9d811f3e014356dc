package repository

import (
	"errors"

	"balloon-flights-backend/internal/database/models"
	apperrors "balloon-flights-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cascadeRule names a dependent table column that references a parent row.
type cascadeRule struct {
	model  interface{}
	column string
}

// cascadeRules mirrors the ON DELETE CASCADE constraints declared on the models.
// Deletes apply them explicitly inside the parent's transaction so the store
// never depends on the database alone to remove dependents.
var cascadeRules = map[string][]cascadeRule{
	"users": {
		{model: &models.Flight{}, column: "owner_id"},
	},
	"pilots": {
		{model: &models.AirwaysPilot{}, column: "pilot_id"},
		{model: &models.Flight{}, column: "pilot_id"},
	},
	"balloons": {
		{model: &models.Flight{}, column: "balloon_id"},
	},
	"airways": {
		{model: &models.AirwaysPilot{}, column: "airways_id"},
		{model: &models.Flight{}, column: "airways_id"},
	},
}

// deleteWithCascade removes the row with id from table together with every
// dependent row, as one transaction. It returns gorm.ErrRecordNotFound when
// the parent row does not exist, leaving the store untouched.
func deleteWithCascade(db *gorm.DB, table string, model interface{}, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, rule := range cascadeRules[table] {
			if err := tx.Where(rule.column+" = ?", id).Delete(rule.model).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(model, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// translateWriteError maps driver constraint failures onto the application error taxonomy.
func translateWriteError(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewIntegrityError(entity, "referenced record does not exist")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperrors.NewValidationError(entity, "value out of range")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewAlreadyExistsError(entity, "")
	default:
		return err
	}
}

// exists reports whether a row with id is present in model's table
func exists(db *gorm.DB, model interface{}, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
