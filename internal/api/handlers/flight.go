package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"balloon-flights-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// PhotoField is the multipart field carrying a flight photo
const PhotoField = "photo"

// FlightHandler handles HTTP requests for flights
type FlightHandler struct {
	flightService service.FlightServiceInterface
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(flightService service.FlightServiceInterface) *FlightHandler {
	return &FlightHandler{
		flightService: flightService,
	}
}

// ListFlights handles GET /api/v1/flights
// @Summary List my flights
// @Description List the caller's flights taking off from Skopje, oldest first
// @Tags flights
// @Produce json
// @Success 200 {array} FlightResponse "Flights of the caller"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/flights [get]
func (h *FlightHandler) ListFlights(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	flights, err := h.flightService.ListFor(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list flights")
		return
	}

	c.JSON(http.StatusOK, newFlightResponses(flights))
}

// SubmitFlight handles POST /api/v1/flights
// @Summary Submit a flight
// @Description Record a flight owned by the caller. Accepts multipart/form-data with an optional photo file, or JSON without a photo. Any owner sent by the client is ignored.
// @Tags flights
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param code formData string true "Flight code"
// @Param takeoff_airport formData string true "Takeoff airport"
// @Param landing_airport formData string true "Landing airport"
// @Param balloon formData string true "Balloon ID"
// @Param pilot formData string true "Pilot ID"
// @Param airways formData string true "Airways ID"
// @Param photo formData file false "Flight photo"
// @Success 201 {object} FlightResponse "Recorded flight"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 413 {object} ErrorResponse "Upload exceeds the size limit"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/flights [post]
func (h *FlightHandler) SubmitFlight(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.SubmitFlightRequest
	if err := bindFlightForm(c, &req); err != nil {
		respondBadRequestBody(c, err, "Invalid request body")
		return
	}
	photo, err := readPhoto(c)
	if err != nil {
		respondBadRequestBody(c, err, "Invalid photo upload")
		return
	}
	req.Photo = photo

	flight, err := h.flightService.Submit(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to submit flight")
		return
	}

	c.JSON(http.StatusCreated, newFlightResponse(flight))
}

// ListAllFlights handles GET /api/v1/admin/flights
// @Summary List all flights
// @Description Administrative overview of every recorded flight
// @Tags admin-flights
// @Produce json
// @Success 200 {array} FlightResponse "All flights"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Staff privileges required"
// @Security BearerAuth
// @Router /api/v1/admin/flights [get]
func (h *FlightHandler) ListAllFlights(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	flights, err := h.flightService.ListAll(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list flights")
		return
	}

	c.JSON(http.StatusOK, newFlightResponses(flights))
}

// GetFlight handles GET /api/v1/admin/flights/:id
// @Summary Get a flight
// @Description Only the owner of a flight may view it
// @Tags admin-flights
// @Produce json
// @Param id path string true "Flight ID (UUID)"
// @Success 200 {object} FlightResponse "Flight"
// @Failure 400 {object} ErrorResponse "Invalid flight ID"
// @Failure 403 {object} ErrorResponse "Caller does not own the flight"
// @Failure 404 {object} ErrorResponse "Flight not found"
// @Security BearerAuth
// @Router /api/v1/admin/flights/{id} [get]
func (h *FlightHandler) GetFlight(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "flight")
	if !ok {
		return
	}

	flight, err := h.flightService.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to get flight")
		return
	}

	c.JSON(http.StatusOK, newFlightResponse(flight))
}

// UpdateFlight handles PUT /api/v1/admin/flights/:id
// @Summary Change a flight
// @Description Replace the editable fields of a flight owned by the caller. The owner never changes.
// @Tags admin-flights
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param id path string true "Flight ID (UUID)"
// @Param code formData string true "Flight code"
// @Param takeoff_airport formData string true "Takeoff airport"
// @Param landing_airport formData string true "Landing airport"
// @Param balloon formData string true "Balloon ID"
// @Param pilot formData string true "Pilot ID"
// @Param airways formData string true "Airways ID"
// @Param photo formData file false "Replacement photo"
// @Param remove_photo formData boolean false "Drop the current photo"
// @Success 200 {object} FlightResponse "Updated flight"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Failure 403 {object} ErrorResponse "Caller does not own the flight"
// @Failure 404 {object} ErrorResponse "Flight not found"
// @Security BearerAuth
// @Router /api/v1/admin/flights/{id} [put]
func (h *FlightHandler) UpdateFlight(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "flight")
	if !ok {
		return
	}

	var req service.UpdateFlightRequest
	if err := bindFlightForm(c, &req); err != nil {
		respondBadRequestBody(c, err, "Invalid request body")
		return
	}
	photo, err := readPhoto(c)
	if err != nil {
		respondBadRequestBody(c, err, "Invalid photo upload")
		return
	}
	req.Photo = photo

	flight, err := h.flightService.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update flight")
		return
	}

	c.JSON(http.StatusOK, newFlightResponse(flight))
}

// DeleteFlight handles DELETE /api/v1/admin/flights/:id
// @Summary Delete a flight
// @Description Flights cannot be deleted; existing flights always answer 403
// @Tags admin-flights
// @Produce json
// @Param id path string true "Flight ID (UUID)"
// @Failure 400 {object} ErrorResponse "Invalid flight ID"
// @Failure 403 {object} ErrorResponse "Flights cannot be deleted"
// @Failure 404 {object} ErrorResponse "Flight not found"
// @Security BearerAuth
// @Router /api/v1/admin/flights/{id} [delete]
func (h *FlightHandler) DeleteFlight(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "flight")
	if !ok {
		return
	}

	if err := h.flightService.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to delete flight")
		return
	}

	c.Status(http.StatusNoContent)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// bindFlightForm binds form fields for multipart uploads and JSON otherwise
func bindFlightForm(c *gin.Context, target interface{}) error {
	if isMultipart(c) {
		return c.ShouldBindWith(target, binding.FormMultipart)
	}
	return c.ShouldBindJSON(target)
}

// readPhoto returns the uploaded photo, or nil when none was attached
func readPhoto(c *gin.Context) (*service.PhotoUpload, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	header, err := c.FormFile(PhotoField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return &service.PhotoUpload{Filename: header.Filename, Data: data}, nil
}
