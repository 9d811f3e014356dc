package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"balloon-flights-backend/internal/database/models"
	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/logger"
	"balloon-flights-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService manages pilots, balloons, carriers and their affiliations.
// These records have no owner; access is restricted to staff at the HTTP layer.
type CatalogService struct {
	pilots       repository.PilotRepositoryInterface
	balloons     repository.BalloonRepositoryInterface
	airways      repository.AirwaysRepositoryInterface
	affiliations repository.AirwaysPilotRepositoryInterface
	validator    *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	pilots repository.PilotRepositoryInterface,
	balloons repository.BalloonRepositoryInterface,
	airways repository.AirwaysRepositoryInterface,
	affiliations repository.AirwaysPilotRepositoryInterface,
	validator *validator.Validate,
) *CatalogService {
	return &CatalogService{
		pilots:       pilots,
		balloons:     balloons,
		airways:      airways,
		affiliations: affiliations,
		validator:    validator,
	}
}

// PilotRequest represents the data needed to create or replace a pilot
type PilotRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=255"`
	LastName    string `json:"last_name" validate:"required,max=255"`
	YearOfBirth int    `json:"year_of_birth" validate:"required"`
	TotalHours  int    `json:"total_hours" validate:"gte=0"`
	Role        string `json:"role" validate:"required,max=255"`
}

// BalloonRequest represents the data needed to create or replace a balloon
type BalloonRequest struct {
	Type             string `json:"type" validate:"required,max=255"`
	ManufacturerName string `json:"manufacturer_name" validate:"required,max=255"`
	MaxPassengers    int    `json:"max_passengers" validate:"gt=0"`
}

// AirwaysRequest represents the data needed to create or replace a carrier
type AirwaysRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	YearFounded int    `json:"year_founded" validate:"required"`
	CoverageEU  bool   `json:"coverage_eu"`
}

// AirwaysPilotRequest affiliates an existing pilot with an existing carrier
type AirwaysPilotRequest struct {
	Pilot   string `json:"pilot" validate:"required"`
	Airways string `json:"airways" validate:"required"`
}

// Pilots

// CreatePilot creates a new pilot
func (s *CatalogService) CreatePilot(ctx context.Context, req *PilotRequest) (*models.Pilot, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	pilot := &models.Pilot{}
	req.apply(pilot)
	if err := s.pilots.Create(pilot); err != nil {
		return nil, fmt.Errorf("failed to create pilot: %w", err)
	}

	logger.WithContext(ctx).WithField("pilot_id", pilot.ID).Info("Pilot created")
	return pilot, nil
}

// GetPilot retrieves a pilot by ID
func (s *CatalogService) GetPilot(ctx context.Context, id uuid.UUID) (*models.Pilot, error) {
	pilot, err := s.pilots.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPilotNotFound, "pilot")
	}
	return pilot, nil
}

// ListPilots retrieves all pilots by last and first name
func (s *CatalogService) ListPilots(ctx context.Context) ([]models.Pilot, error) {
	pilots, err := s.pilots.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	if pilots == nil {
		pilots = []models.Pilot{}
	}
	return pilots, nil
}

// UpdatePilot replaces a pilot's fields
func (s *CatalogService) UpdatePilot(ctx context.Context, id uuid.UUID, req *PilotRequest) (*models.Pilot, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	pilot, err := s.GetPilot(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(pilot)
	if err := s.pilots.Update(pilot); err != nil {
		return nil, fmt.Errorf("failed to update pilot: %w", err)
	}
	return pilot, nil
}

// DeletePilot deletes a pilot together with its affiliations and flights
func (s *CatalogService) DeletePilot(ctx context.Context, id uuid.UUID) error {
	if err := s.pilots.Delete(id); err != nil {
		return notFound(err, apperrors.ErrPilotNotFound, "pilot")
	}
	logger.WithContext(ctx).WithField("pilot_id", id).Info("Pilot deleted with dependent affiliations and flights")
	return nil
}

// Balloons

// CreateBalloon creates a new balloon
func (s *CatalogService) CreateBalloon(ctx context.Context, req *BalloonRequest) (*models.Balloon, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	balloon := &models.Balloon{}
	req.apply(balloon)
	if err := s.balloons.Create(balloon); err != nil {
		return nil, fmt.Errorf("failed to create balloon: %w", err)
	}

	logger.WithContext(ctx).WithField("balloon_id", balloon.ID).Info("Balloon created")
	return balloon, nil
}

// GetBalloon retrieves a balloon by ID
func (s *CatalogService) GetBalloon(ctx context.Context, id uuid.UUID) (*models.Balloon, error) {
	balloon, err := s.balloons.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrBalloonNotFound, "balloon")
	}
	return balloon, nil
}

// ListBalloons retrieves all balloons
func (s *CatalogService) ListBalloons(ctx context.Context) ([]models.Balloon, error) {
	balloons, err := s.balloons.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list balloons: %w", err)
	}
	if balloons == nil {
		balloons = []models.Balloon{}
	}
	return balloons, nil
}

// UpdateBalloon replaces a balloon's fields
func (s *CatalogService) UpdateBalloon(ctx context.Context, id uuid.UUID, req *BalloonRequest) (*models.Balloon, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	balloon, err := s.GetBalloon(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(balloon)
	if err := s.balloons.Update(balloon); err != nil {
		return nil, fmt.Errorf("failed to update balloon: %w", err)
	}
	return balloon, nil
}

// DeleteBalloon deletes a balloon together with its flights
func (s *CatalogService) DeleteBalloon(ctx context.Context, id uuid.UUID) error {
	if err := s.balloons.Delete(id); err != nil {
		return notFound(err, apperrors.ErrBalloonNotFound, "balloon")
	}
	logger.WithContext(ctx).WithField("balloon_id", id).Info("Balloon deleted with dependent flights")
	return nil
}

// Airways

// CreateAirways creates a new carrier
func (s *CatalogService) CreateAirways(ctx context.Context, req *AirwaysRequest) (*models.Airways, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	airways := &models.Airways{}
	req.apply(airways)
	if err := s.airways.Create(airways); err != nil {
		return nil, fmt.Errorf("failed to create airways: %w", err)
	}

	logger.WithContext(ctx).WithField("airways_id", airways.ID).Info("Airways created")
	return airways, nil
}

// GetAirways retrieves a carrier by ID
func (s *CatalogService) GetAirways(ctx context.Context, id uuid.UUID) (*models.Airways, error) {
	airways, err := s.airways.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAirwaysNotFound, "airways")
	}
	return airways, nil
}

// ListAirways retrieves all carriers by name
func (s *CatalogService) ListAirways(ctx context.Context) ([]models.Airways, error) {
	airways, err := s.airways.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list airways: %w", err)
	}
	if airways == nil {
		airways = []models.Airways{}
	}
	return airways, nil
}

// UpdateAirways replaces a carrier's fields
func (s *CatalogService) UpdateAirways(ctx context.Context, id uuid.UUID, req *AirwaysRequest) (*models.Airways, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	airways, err := s.GetAirways(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(airways)
	if err := s.airways.Update(airways); err != nil {
		return nil, fmt.Errorf("failed to update airways: %w", err)
	}
	return airways, nil
}

// DeleteAirways deletes a carrier together with its affiliations and flights
func (s *CatalogService) DeleteAirways(ctx context.Context, id uuid.UUID) error {
	if err := s.airways.Delete(id); err != nil {
		return notFound(err, apperrors.ErrAirwaysNotFound, "airways")
	}
	logger.WithContext(ctx).WithField("airways_id", id).Info("Airways deleted with dependent affiliations and flights")
	return nil
}

// Affiliations

// CreateAffiliation links an existing pilot to an existing carrier
func (s *CatalogService) CreateAffiliation(ctx context.Context, req *AirwaysPilotRequest) (*models.AirwaysPilot, error) {
	errs := apperrors.ValidationErrors{}
	if err := collectStructErrors(s.validator, req, errs); err != nil {
		return nil, err
	}
	pilotID, err := resolveRef(errs, "pilot", req.Pilot, s.pilots.Exists)
	if err != nil {
		return nil, err
	}
	airwaysID, err := resolveRef(errs, "airways", req.Airways, s.airways.Exists)
	if err != nil {
		return nil, err
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	affiliation := &models.AirwaysPilot{PilotID: pilotID, AirwaysID: airwaysID}
	if err := s.affiliations.Create(affiliation); err != nil {
		return nil, fmt.Errorf("failed to create affiliation: %w", err)
	}

	// Reload so the label carries pilot and carrier names
	if loaded, err := s.affiliations.GetByID(affiliation.ID); err == nil {
		affiliation = loaded
	}
	return affiliation, nil
}

// GetAffiliation retrieves an affiliation by ID
func (s *CatalogService) GetAffiliation(ctx context.Context, id uuid.UUID) (*models.AirwaysPilot, error) {
	affiliation, err := s.affiliations.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAirwaysPilotNotFound, "affiliation")
	}
	return affiliation, nil
}

// ListAffiliations retrieves affiliations, optionally narrowed to one pilot or carrier
func (s *CatalogService) ListAffiliations(ctx context.Context, filter repository.AirwaysPilotFilter) ([]models.AirwaysPilot, error) {
	affiliations, err := s.affiliations.Find(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list affiliations: %w", err)
	}
	if affiliations == nil {
		affiliations = []models.AirwaysPilot{}
	}
	return affiliations, nil
}

// ListAirwaysPilots retrieves the affiliations of one carrier
func (s *CatalogService) ListAirwaysPilots(ctx context.Context, airwaysID uuid.UUID) ([]models.AirwaysPilot, error) {
	ok, err := s.airways.Exists(airwaysID)
	if err != nil {
		return nil, fmt.Errorf("failed to check airways: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrAirwaysNotFound
	}
	return s.ListAffiliations(ctx, repository.AirwaysPilotFilter{AirwaysID: airwaysID})
}

// DeleteAffiliation deletes an affiliation
func (s *CatalogService) DeleteAffiliation(ctx context.Context, id uuid.UUID) error {
	if err := s.affiliations.Delete(id); err != nil {
		return notFound(err, apperrors.ErrAirwaysPilotNotFound, "affiliation")
	}
	return nil
}

// check trims and validates a catalog request, reporting every failing field
func (s *CatalogService) check(req interface{ normalize() }) error {
	req.normalize()
	errs := apperrors.ValidationErrors{}
	if err := collectStructErrors(s.validator, req, errs); err != nil {
		return err
	}
	return errs.OrNil()
}

func notFound(err error, sentinel error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to access %s: %w", entity, err)
}

func (r *PilotRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Role = strings.TrimSpace(r.Role)
}

func (r *PilotRequest) apply(p *models.Pilot) {
	p.FirstName = r.FirstName
	p.LastName = r.LastName
	p.YearOfBirth = r.YearOfBirth
	p.TotalHours = r.TotalHours
	p.Role = r.Role
}

func (r *BalloonRequest) normalize() {
	r.Type = strings.TrimSpace(r.Type)
	r.ManufacturerName = strings.TrimSpace(r.ManufacturerName)
}

func (r *BalloonRequest) apply(b *models.Balloon) {
	b.Type = r.Type
	b.ManufacturerName = r.ManufacturerName
	b.MaxPassengers = r.MaxPassengers
}

func (r *AirwaysRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *AirwaysRequest) apply(a *models.Airways) {
	a.Name = r.Name
	a.YearFounded = r.YearFounded
	a.CoverageEU = r.CoverageEU
}
