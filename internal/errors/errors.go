package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this username"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a field-keyed set of validation failures. Every offending
// field is reported, not just the first one.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field, keeping the first message seen.
func (e ValidationErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Has reports whether field has a recorded failure
func (e ValidationErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// OrNil returns nil when nothing was recorded so callers can `return errs.OrNil()`.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// IntegrityError represents a write that would leave a dangling foreign key
type IntegrityError struct {
	Entity  string
	Message string
}

func (e *IntegrityError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("integrity error on %s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("integrity error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrPilotNotFound        = &NotFoundError{Entity: "pilot"}
	ErrBalloonNotFound      = &NotFoundError{Entity: "balloon"}
	ErrAirwaysNotFound      = &NotFoundError{Entity: "airways"}
	ErrAirwaysPilotNotFound = &NotFoundError{Entity: "airways-pilot affiliation"}
	ErrFlightNotFound       = &NotFoundError{Entity: "flight"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this username"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrMissingActor       = &AuthenticationError{Message: "authenticated user not found in context"}
)

// Authorization Errors
var (
	ErrFlightChangeDenied = &AuthorizationError{Message: "you do not have permission to change this flight"}
	ErrFlightDeleteDenied = &AuthorizationError{Message: "flights cannot be deleted"}
	ErrStaffRequired      = &AuthorizationError{Message: "staff privileges required"}
)

// Storage Errors
var (
	ErrBlobNotFound = errors.New("blob not found")
	ErrInvalidImage = errors.New("upload a valid image")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or a field-keyed ValidationErrors set
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var fieldErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &fieldErrs)
}

// AsValidationErrors extracts the field-keyed set from err, if present
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var fieldErrs ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single.Field: single.Message}, true
	}
	return nil, false
}

// IsIntegrity checks if an error is an IntegrityError
func IsIntegrity(err error) bool {
	var integrityErr *IntegrityError
	return errors.As(err, &integrityErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(entity, message string) error {
	return &IntegrityError{Entity: entity, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
