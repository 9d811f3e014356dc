package handlers

import (
	"fmt"
	"time"

	"balloon-flights-backend/internal/database/models"

	"github.com/google/uuid"
)

// RefResponse is a related record rendered by id and display label
type RefResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// FlightResponse is the API rendering of a flight
type FlightResponse struct {
	ID             uuid.UUID   `json:"id"`
	Code           string      `json:"code"`
	TakeoffAirport string      `json:"takeoff_airport"`
	LandingAirport string      `json:"landing_airport"`
	OwnerID        uuid.UUID   `json:"owner_id"`
	Photo          *string     `json:"photo"`
	Balloon        RefResponse `json:"balloon"`
	Pilot          RefResponse `json:"pilot"`
	Airways        RefResponse `json:"airways"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// AffiliationResponse is the API rendering of a pilot-carrier affiliation
type AffiliationResponse struct {
	ID        uuid.UUID   `json:"id"`
	Label     string      `json:"label"`
	Pilot     RefResponse `json:"pilot"`
	Airways   RefResponse `json:"airways"`
	CreatedAt time.Time   `json:"created_at"`
}

func ref(id uuid.UUID, related fmt.Stringer) RefResponse {
	label := id.String()
	if related != nil {
		label = related.String()
	}
	return RefResponse{ID: id, Label: label}
}

func newFlightResponse(f *models.Flight) FlightResponse {
	resp := FlightResponse{
		ID:             f.ID,
		Code:           f.Code,
		TakeoffAirport: f.TakeoffAirport,
		LandingAirport: f.LandingAirport,
		OwnerID:        f.OwnerID,
		Photo:          f.Photo,
		Balloon:        RefResponse{ID: f.BalloonID, Label: f.BalloonID.String()},
		Pilot:          RefResponse{ID: f.PilotID, Label: f.PilotID.String()},
		Airways:        RefResponse{ID: f.AirwaysID, Label: f.AirwaysID.String()},
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
	// Typed nil pointers must not reach ref as non-nil interfaces
	if f.Balloon != nil {
		resp.Balloon = ref(f.BalloonID, f.Balloon)
	}
	if f.Pilot != nil {
		resp.Pilot = ref(f.PilotID, f.Pilot)
	}
	if f.Airways != nil {
		resp.Airways = ref(f.AirwaysID, f.Airways)
	}
	return resp
}

func newFlightResponses(flights []models.Flight) []FlightResponse {
	out := make([]FlightResponse, 0, len(flights))
	for i := range flights {
		out = append(out, newFlightResponse(&flights[i]))
	}
	return out
}

func newAffiliationResponse(ap *models.AirwaysPilot) AffiliationResponse {
	resp := AffiliationResponse{
		ID:        ap.ID,
		Label:     ap.String(),
		Pilot:     RefResponse{ID: ap.PilotID, Label: ap.PilotID.String()},
		Airways:   RefResponse{ID: ap.AirwaysID, Label: ap.AirwaysID.String()},
		CreatedAt: ap.CreatedAt,
	}
	if ap.Pilot != nil {
		resp.Pilot = ref(ap.PilotID, ap.Pilot)
	}
	if ap.Airways != nil {
		resp.Airways = ref(ap.AirwaysID, ap.Airways)
	}
	return resp
}

func newAffiliationResponses(affiliations []models.AirwaysPilot) []AffiliationResponse {
	out := make([]AffiliationResponse, 0, len(affiliations))
	for i := range affiliations {
		out = append(out, newAffiliationResponse(&affiliations[i]))
	}
	return out
}
