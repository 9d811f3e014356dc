package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "pilot"}
		assert.Equal(t, "pilot not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "pilot"}
		err2 := &NotFoundError{Entity: "pilot"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "pilot"}
		err2 := &NotFoundError{Entity: "balloon"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrFlightNotFound, ErrFlightNotFound))
		assert.False(t, errors.Is(ErrFlightNotFound, ErrPilotNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAirwaysNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrBalloonNotFound)))
		assert.False(t, IsNotFound(ErrInvalidImage))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this username"}
		assert.Equal(t, "user already exists with this username", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "landing_airport", Message: "required"}
		assert.Equal(t, "validation error: landing_airport - required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("code", "required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrFlightNotFound))
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("Error message lists every field in order", func(t *testing.T) {
		errs := ValidationErrors{}
		errs.Add("pilot", "does not exist")
		errs.Add("landing_airport", "required")
		assert.Equal(t, "validation failed: landing_airport: required; pilot: does not exist", errs.Error())
	})

	t.Run("Add keeps the first message", func(t *testing.T) {
		errs := ValidationErrors{}
		errs.Add("balloon", "required")
		errs.Add("balloon", "does not exist")
		assert.Equal(t, "required", errs["balloon"])
		assert.True(t, errs.Has("balloon"))
		assert.False(t, errs.Has("pilot"))
	})

	t.Run("OrNil", func(t *testing.T) {
		assert.NoError(t, ValidationErrors{}.OrNil())
		assert.Error(t, ValidationErrors{"code": "required"}.OrNil())
	})

	t.Run("AsValidationErrors through wrapping", func(t *testing.T) {
		err := fmt.Errorf("submit: %w", ValidationErrors{"landing_airport": "required"})
		assert.True(t, IsValidation(err))

		fields, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, "required", fields["landing_airport"])
	})

	t.Run("AsValidationErrors from single error", func(t *testing.T) {
		fields, ok := AsValidationErrors(NewValidationError("photo", "upload a valid image"))
		require.True(t, ok)
		assert.Equal(t, ValidationErrors{"photo": "upload a valid image"}, fields)
	})

	t.Run("AsValidationErrors on other errors", func(t *testing.T) {
		_, ok := AsValidationErrors(ErrFlightNotFound)
		assert.False(t, ok)
	})
}

func TestIntegrityError(t *testing.T) {
	err := NewIntegrityError("flight", "referenced pilot does not exist")
	assert.Equal(t, "integrity error on flight: referenced pilot does not exist", err.Error())
	assert.True(t, IsIntegrity(fmt.Errorf("create: %w", err)))
	assert.False(t, IsIntegrity(ErrFlightNotFound))

	assert.Equal(t, "integrity error: boom", (&IntegrityError{Message: "boom"}).Error())
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthorization(ErrFlightDeleteDenied))
	assert.True(t, IsAuthorization(ErrFlightChangeDenied))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
	assert.True(t, IsConfiguration(NewConfigurationError("JWT_SECRET must be set")))
}
