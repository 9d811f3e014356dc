package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"balloon-flights-backend/internal/database/models"
	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/logger"
	"balloon-flights-backend/internal/policy"
	"balloon-flights-backend/internal/repository"
	"balloon-flights-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingAirport is the only takeoff airport shown in a user's flight listing
const ListingAirport = "Skopje"

// FlightService handles submission, listing and owner-gated changes of flights
type FlightService struct {
	flights       repository.FlightRepositoryInterface
	balloons      repository.BalloonRepositoryInterface
	pilots        repository.PilotRepositoryInterface
	airways       repository.AirwaysRepositoryInterface
	blobs         storage.BlobStore
	validator     *validator.Validate
	maxPhotoBytes int64
}

// NewFlightService creates a new flight service. A non-positive maxPhotoBytes disables the size check.
func NewFlightService(
	flights repository.FlightRepositoryInterface,
	balloons repository.BalloonRepositoryInterface,
	pilots repository.PilotRepositoryInterface,
	airways repository.AirwaysRepositoryInterface,
	blobs storage.BlobStore,
	validator *validator.Validate,
	maxPhotoBytes int64,
) *FlightService {
	return &FlightService{
		flights:       flights,
		balloons:      balloons,
		pilots:        pilots,
		airways:       airways,
		blobs:         blobs,
		validator:     validator,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// PhotoUpload is an uploaded image as received from the client
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// SubmitFlightRequest is the payload of a flight submission. There is no owner
// field: the owner is always the submitting actor.
type SubmitFlightRequest struct {
	Code           string       `json:"code" form:"code" validate:"required,max=255"`
	TakeoffAirport string       `json:"takeoff_airport" form:"takeoff_airport" validate:"required,max=255"`
	LandingAirport string       `json:"landing_airport" form:"landing_airport" validate:"required,max=255"`
	Balloon        string       `json:"balloon" form:"balloon" validate:"required"`
	Pilot          string       `json:"pilot" form:"pilot" validate:"required"`
	Airways        string       `json:"airways" form:"airways" validate:"required"`
	Photo          *PhotoUpload `json:"-" form:"-"`
}

// UpdateFlightRequest replaces the editable fields of a flight. The photo is kept
// unless a new one is uploaded or RemovePhoto is set.
type UpdateFlightRequest struct {
	SubmitFlightRequest
	RemovePhoto bool `json:"remove_photo" form:"remove_photo"`
}

func (r *SubmitFlightRequest) normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.TakeoffAirport = strings.TrimSpace(r.TakeoffAirport)
	r.LandingAirport = strings.TrimSpace(r.LandingAirport)
	r.Balloon = strings.TrimSpace(r.Balloon)
	r.Pilot = strings.TrimSpace(r.Pilot)
	r.Airways = strings.TrimSpace(r.Airways)
}

// flightRefs are the resolved catalog references of a valid request
type flightRefs struct {
	balloonID uuid.UUID
	pilotID   uuid.UUID
	airwaysID uuid.UUID
}

// validate checks every field of req and returns all failures at once
func (s *FlightService) validate(req *SubmitFlightRequest) (flightRefs, error) {
	req.normalize()

	errs := apperrors.ValidationErrors{}
	if err := collectStructErrors(s.validator, req, errs); err != nil {
		return flightRefs{}, err
	}

	var refs flightRefs
	var err error
	if refs.balloonID, err = resolveRef(errs, "balloon", req.Balloon, s.balloons.Exists); err != nil {
		return flightRefs{}, err
	}
	if refs.pilotID, err = resolveRef(errs, "pilot", req.Pilot, s.pilots.Exists); err != nil {
		return flightRefs{}, err
	}
	if refs.airwaysID, err = resolveRef(errs, "airways", req.Airways, s.airways.Exists); err != nil {
		return flightRefs{}, err
	}

	if req.Photo != nil {
		if s.maxPhotoBytes > 0 && int64(len(req.Photo.Data)) > s.maxPhotoBytes {
			errs.Add("photo", "file too large")
		} else if _, err := storage.DetectImage(req.Photo.Data); err != nil {
			errs.Add("photo", apperrors.ErrInvalidImage.Error())
		}
	}

	return refs, errs.OrNil()
}

// Submit validates req and records a new flight owned by actor.
// Any owner information carried by the client is ignored. On validation failure
// nothing is stored. The photo blob is written before the row; if the row insert
// fails the blob is removed again, so a row never points at a missing blob. A
// crash between the two writes can leave an unreferenced blob behind.
func (s *FlightService) Submit(ctx context.Context, actor policy.Actor, req *SubmitFlightRequest) (*models.Flight, error) {
	if actor.Anonymous() {
		return nil, apperrors.ErrMissingActor
	}

	log := logger.WithContext(ctx).WithField("actor", actor.Username)

	refs, err := s.validate(req)
	if err != nil {
		if apperrors.IsValidation(err) {
			log.WithError(err).Info("Rejected flight submission")
		}
		return nil, err
	}

	flight := &models.Flight{
		Code:           req.Code,
		TakeoffAirport: req.TakeoffAirport,
		LandingAirport: req.LandingAirport,
		OwnerID:        actor.UserID,
		BalloonID:      refs.balloonID,
		PilotID:        refs.pilotID,
		AirwaysID:      refs.airwaysID,
	}

	var photoRef string
	if req.Photo != nil {
		photoRef, err = s.blobs.Save(ctx, req.Photo.Filename, req.Photo.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store photo: %w", err)
		}
		flight.Photo = &photoRef
	}

	if err := s.flights.Create(flight); err != nil {
		s.discardBlob(ctx, photoRef)
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"flight_id":   flight.ID,
		"flight_code": flight.Code,
	}).Info("Flight submitted")

	return flight, nil
}

// ListFor returns the actor's flights departing from ListingAirport in insertion
// order. The result is never nil; calling again re-runs the query.
func (s *FlightService) ListFor(ctx context.Context, actor policy.Actor) ([]models.Flight, error) {
	if actor.Anonymous() {
		return nil, apperrors.ErrMissingActor
	}

	flights, err := s.flights.Find(repository.FlightFilter{
		OwnerID:        actor.UserID,
		TakeoffAirport: ListingAirport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	if flights == nil {
		flights = []models.Flight{}
	}
	return flights, nil
}

// ListAll returns every flight for the administrative overview
func (s *FlightService) ListAll(ctx context.Context, actor policy.Actor) ([]models.Flight, error) {
	if actor.Anonymous() {
		return nil, apperrors.ErrMissingActor
	}

	flights, err := s.flights.Find(repository.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	if flights == nil {
		flights = []models.Flight{}
	}
	return flights, nil
}

// Get returns a flight the actor may view
func (s *FlightService) Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.Flight, error) {
	flight, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewOrChange(actor, flight) {
		return nil, apperrors.ErrFlightChangeDenied
	}
	return flight, nil
}

// Update replaces the editable fields of a flight owned by actor. The owner never changes.
func (s *FlightService) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *UpdateFlightRequest) (*models.Flight, error) {
	flight, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewOrChange(actor, flight) {
		logger.WithContext(ctx).WithField("flight_id", id).Warn("Denied flight change")
		return nil, apperrors.ErrFlightChangeDenied
	}

	refs, err := s.validate(&req.SubmitFlightRequest)
	if err != nil {
		return nil, err
	}

	oldPhoto := flight.Photo
	flight.Code = req.Code
	flight.TakeoffAirport = req.TakeoffAirport
	flight.LandingAirport = req.LandingAirport
	flight.BalloonID = refs.balloonID
	flight.PilotID = refs.pilotID
	flight.AirwaysID = refs.airwaysID
	flight.Balloon, flight.Pilot, flight.Airways = nil, nil, nil

	var newPhoto string
	switch {
	case req.Photo != nil:
		newPhoto, err = s.blobs.Save(ctx, req.Photo.Filename, req.Photo.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store photo: %w", err)
		}
		flight.Photo = &newPhoto
	case req.RemovePhoto:
		flight.Photo = nil
	}

	if err := s.flights.Update(flight); err != nil {
		s.discardBlob(ctx, newPhoto)
		return nil, fmt.Errorf("failed to update flight: %w", err)
	}

	if oldPhoto != nil && (flight.Photo == nil || *flight.Photo != *oldPhoto) {
		s.discardBlob(ctx, *oldPhoto)
	}

	logger.WithContext(ctx).WithField("flight_id", flight.ID).Info("Flight updated")
	return flight, nil
}

// Delete always refuses once the flight is known to exist. Flights are never removed through this path.
func (s *FlightService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	flight, err := s.load(id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(actor, flight) {
		logger.WithContext(ctx).WithField("flight_id", id).Warn("Denied flight deletion")
		return apperrors.ErrFlightDeleteDenied
	}
	return s.flights.Delete(id)
}

func (s *FlightService) load(id uuid.UUID) (*models.Flight, error) {
	flight, err := s.flights.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return flight, nil
}

// discardBlob removes a blob written by a failed operation. Failures are logged
// and otherwise ignored.
func (s *FlightService) discardBlob(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.blobs.Delete(ctx, ref); err != nil && !errors.Is(err, apperrors.ErrBlobNotFound) {
		logger.WithContext(ctx).WithError(err).WithField("blob", ref).Error("Failed to remove flight photo")
	}
}
