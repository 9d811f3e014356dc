package handlers

import (
	"net/http"

	"balloon-flights-backend/internal/repository"
	"balloon-flights-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler exposes staff-only management of pilots, balloons, carriers and affiliations
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// CreatePilot handles POST /api/v1/admin/pilots
// @Summary Create a pilot
// @Tags admin-pilots
// @Accept json
// @Produce json
// @Param pilot body service.PilotRequest true "Pilot data"
// @Success 201 {object} models.Pilot "Created pilot"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Failure 403 {object} ErrorResponse "Staff privileges required"
// @Security BearerAuth
// @Router /api/v1/admin/pilots [post]
func (h *CatalogHandler) CreatePilot(c *gin.Context) {
	var req service.PilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	created, err := h.catalogService.CreatePilot(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create pilot")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetPilot handles GET /api/v1/admin/pilots/:id
// @Summary Get a pilot
// @Tags admin-pilots
// @Produce json
// @Param id path string true "Pilot ID (UUID)"
// @Success 200 {object} models.Pilot "Pilot"
// @Failure 400 {object} ErrorResponse "Invalid pilot ID"
// @Failure 404 {object} ErrorResponse "Pilot not found"
// @Security BearerAuth
// @Router /api/v1/admin/pilots/{id} [get]
func (h *CatalogHandler) GetPilot(c *gin.Context) {
	id, ok := parseID(c, "id", "pilot")
	if !ok {
		return
	}

	found, err := h.catalogService.GetPilot(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get pilot")
		return
	}

	c.JSON(http.StatusOK, found)
}

// ListPilots handles GET /api/v1/admin/pilots
// @Summary List pilots
// @Tags admin-pilots
// @Produce json
// @Success 200 {array} models.Pilot "Pilots"
// @Security BearerAuth
// @Router /api/v1/admin/pilots [get]
func (h *CatalogHandler) ListPilots(c *gin.Context) {
	items, err := h.catalogService.ListPilots(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list pilots")
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdatePilot handles PUT /api/v1/admin/pilots/:id
// @Summary Replace a pilot
// @Tags admin-pilots
// @Accept json
// @Produce json
// @Param id path string true "Pilot ID (UUID)"
// @Param pilot body service.PilotRequest true "Pilot data"
// @Success 200 {object} models.Pilot "Updated pilot"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Failure 404 {object} ErrorResponse "Pilot not found"
// @Security BearerAuth
// @Router /api/v1/admin/pilots/{id} [put]
func (h *CatalogHandler) UpdatePilot(c *gin.Context) {
	id, ok := parseID(c, "id", "pilot")
	if !ok {
		return
	}

	var req service.PilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.catalogService.UpdatePilot(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update pilot")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePilot handles DELETE /api/v1/admin/pilots/:id
// @Summary Delete a pilot
// @Description Flights and affiliations referencing the pilot are deleted with it
// @Tags admin-pilots
// @Param id path string true "Pilot ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Pilot not found"
// @Security BearerAuth
// @Router /api/v1/admin/pilots/{id} [delete]
func (h *CatalogHandler) DeletePilot(c *gin.Context) {
	id, ok := parseID(c, "id", "pilot")
	if !ok {
		return
	}

	if err := h.catalogService.DeletePilot(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete pilot")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateBalloon handles POST /api/v1/admin/balloons
// @Summary Create a balloon
// @Tags admin-balloons
// @Accept json
// @Produce json
// @Param balloon body service.BalloonRequest true "Balloon data"
// @Success 201 {object} models.Balloon "Created balloon"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Failure 403 {object} ErrorResponse "Staff privileges required"
// @Security BearerAuth
// @Router /api/v1/admin/balloons [post]
func (h *CatalogHandler) CreateBalloon(c *gin.Context) {
	var req service.BalloonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	created, err := h.catalogService.CreateBalloon(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create balloon")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetBalloon handles GET /api/v1/admin/balloons/:id
// @Summary Get a balloon
// @Tags admin-balloons
// @Produce json
// @Param id path string true "Balloon ID (UUID)"
// @Success 200 {object} models.Balloon "Balloon"
// @Failure 400 {object} ErrorResponse "Invalid balloon ID"
// @Failure 404 {object} ErrorResponse "Balloon not found"
// @Security BearerAuth
// @Router /api/v1/admin/balloons/{id} [get]
func (h *CatalogHandler) GetBalloon(c *gin.Context) {
	id, ok := parseID(c, "id", "balloon")
	if !ok {
		return
	}

	found, err := h.catalogService.GetBalloon(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get balloon")
		return
	}

	c.JSON(http.StatusOK, found)
}

// ListBalloons handles GET /api/v1/admin/balloons
// @Summary List balloons
// @Tags admin-balloons
// @Produce json
// @Success 200 {array} models.Balloon "Balloons"
// @Security BearerAuth
// @Router /api/v1/admin/balloons [get]
func (h *CatalogHandler) ListBalloons(c *gin.Context) {
	items, err := h.catalogService.ListBalloons(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list balloons")
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateBalloon handles PUT /api/v1/admin/balloons/:id
// @Summary Replace a balloon
// @Tags admin-balloons
// @Accept json
// @Produce json
// @Param id path string true "Balloon ID (UUID)"
// @Param balloon body service.BalloonRequest true "Balloon data"
// @Success 200 {object} models.Balloon "Updated balloon"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Failure 404 {object} ErrorResponse "Balloon not found"
// @Security BearerAuth
// @Router /api/v1/admin/balloons/{id} [put]
func (h *CatalogHandler) UpdateBalloon(c *gin.Context) {
	id, ok := parseID(c, "id", "balloon")
	if !ok {
		return
	}

	var req service.BalloonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.catalogService.UpdateBalloon(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update balloon")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBalloon handles DELETE /api/v1/admin/balloons/:id
// @Summary Delete a balloon
// @Description Flights and affiliations referencing the balloon are deleted with it
// @Tags admin-balloons
// @Param id path string true "Balloon ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Balloon not found"
// @Security BearerAuth
// @Router /api/v1/admin/balloons/{id} [delete]
func (h *CatalogHandler) DeleteBalloon(c *gin.Context) {
	id, ok := parseID(c, "id", "balloon")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteBalloon(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete balloon")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateAirways handles POST /api/v1/admin/airways
// @Summary Create a carrier
// @Tags admin-airways
// @Accept json
// @Produce json
// @Param airways body service.AirwaysRequest true "Airways data"
// @Success 201 {object} models.Airways "Created carrier"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Failure 403 {object} ErrorResponse "Staff privileges required"
// @Security BearerAuth
// @Router /api/v1/admin/airways [post]
func (h *CatalogHandler) CreateAirways(c *gin.Context) {
	var req service.AirwaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	created, err := h.catalogService.CreateAirways(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create carrier")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAirways handles GET /api/v1/admin/airways/:id
// @Summary Get a carrier
// @Tags admin-airways
// @Produce json
// @Param id path string true "Airways ID (UUID)"
// @Success 200 {object} models.Airways "Airways"
// @Failure 400 {object} ErrorResponse "Invalid carrier ID"
// @Failure 404 {object} ErrorResponse "Airways not found"
// @Security BearerAuth
// @Router /api/v1/admin/airways/{id} [get]
func (h *CatalogHandler) GetAirways(c *gin.Context) {
	id, ok := parseID(c, "id", "carrier")
	if !ok {
		return
	}

	found, err := h.catalogService.GetAirways(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get carrier")
		return
	}

	c.JSON(http.StatusOK, found)
}

// ListAirways handles GET /api/v1/admin/airways
// @Summary List airways
// @Tags admin-airways
// @Produce json
// @Success 200 {array} models.Airways "Airways"
// @Security BearerAuth
// @Router /api/v1/admin/airways [get]
func (h *CatalogHandler) ListAirways(c *gin.Context) {
	items, err := h.catalogService.ListAirways(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list airways")
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateAirways handles PUT /api/v1/admin/airways/:id
// @Summary Replace a carrier
// @Tags admin-airways
// @Accept json
// @Produce json
// @Param id path string true "Airways ID (UUID)"
// @Param airways body service.AirwaysRequest true "Airways data"
// @Success 200 {object} models.Airways "Updated carrier"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Failure 404 {object} ErrorResponse "Airways not found"
// @Security BearerAuth
// @Router /api/v1/admin/airways/{id} [put]
func (h *CatalogHandler) UpdateAirways(c *gin.Context) {
	id, ok := parseID(c, "id", "carrier")
	if !ok {
		return
	}

	var req service.AirwaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.catalogService.UpdateAirways(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update carrier")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAirways handles DELETE /api/v1/admin/airways/:id
// @Summary Delete a carrier
// @Description Flights and affiliations referencing the carrier are deleted with it
// @Tags admin-airways
// @Param id path string true "Airways ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Airways not found"
// @Security BearerAuth
// @Router /api/v1/admin/airways/{id} [delete]
func (h *CatalogHandler) DeleteAirways(c *gin.Context) {
	id, ok := parseID(c, "id", "carrier")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteAirways(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete carrier")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateAffiliation handles POST /api/v1/admin/airways-pilots
// @Summary Affiliate a pilot with a carrier
// @Tags admin-airways-pilots
// @Accept json
// @Produce json
// @Param affiliation body service.AirwaysPilotRequest true "Pilot and carrier IDs"
// @Success 201 {object} AffiliationResponse "Created affiliation"
// @Failure 400 {object} ValidationErrorResponse "Field-keyed validation failures"
// @Security BearerAuth
// @Router /api/v1/admin/airways-pilots [post]
func (h *CatalogHandler) CreateAffiliation(c *gin.Context) {
	var req service.AirwaysPilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	affiliation, err := h.catalogService.CreateAffiliation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create affiliation")
		return
	}

	c.JSON(http.StatusCreated, newAffiliationResponse(affiliation))
}

// GetAffiliation handles GET /api/v1/admin/airways-pilots/:id
// @Summary Get an affiliation
// @Tags admin-airways-pilots
// @Produce json
// @Param id path string true "Affiliation ID (UUID)"
// @Success 200 {object} AffiliationResponse "Affiliation"
// @Failure 404 {object} ErrorResponse "Affiliation not found"
// @Security BearerAuth
// @Router /api/v1/admin/airways-pilots/{id} [get]
func (h *CatalogHandler) GetAffiliation(c *gin.Context) {
	id, ok := parseID(c, "id", "affiliation")
	if !ok {
		return
	}

	affiliation, err := h.catalogService.GetAffiliation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get affiliation")
		return
	}

	c.JSON(http.StatusOK, newAffiliationResponse(affiliation))
}

// ListAffiliations handles GET /api/v1/admin/airways-pilots
// @Summary List affiliations
// @Tags admin-airways-pilots
// @Produce json
// @Param pilot query string false "Only affiliations of this pilot"
// @Param airways query string false "Only affiliations of this carrier"
// @Success 200 {array} AffiliationResponse "Affiliations"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /api/v1/admin/airways-pilots [get]
func (h *CatalogHandler) ListAffiliations(c *gin.Context) {
	var filter repository.AirwaysPilotFilter
	for param, target := range map[string]*uuid.UUID{"pilot": &filter.PilotID, "airways": &filter.AirwaysID} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param + " filter"})
			return
		}
		*target = id
	}

	affiliations, err := h.catalogService.ListAffiliations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list affiliations")
		return
	}

	c.JSON(http.StatusOK, newAffiliationResponses(affiliations))
}

// ListAirwaysPilots handles GET /api/v1/admin/airways/:id/pilots
// @Summary List the pilots of a carrier
// @Tags admin-airways
// @Produce json
// @Param id path string true "Airways ID (UUID)"
// @Success 200 {array} AffiliationResponse "Affiliations of the carrier"
// @Failure 404 {object} ErrorResponse "Airways not found"
// @Security BearerAuth
// @Router /api/v1/admin/airways/{id}/pilots [get]
func (h *CatalogHandler) ListAirwaysPilots(c *gin.Context) {
	id, ok := parseID(c, "id", "carrier")
	if !ok {
		return
	}

	affiliations, err := h.catalogService.ListAirwaysPilots(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to list carrier pilots")
		return
	}

	c.JSON(http.StatusOK, newAffiliationResponses(affiliations))
}

// DeleteAffiliation handles DELETE /api/v1/admin/airways-pilots/:id
// @Summary Delete an affiliation
// @Tags admin-airways-pilots
// @Param id path string true "Affiliation ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Affiliation not found"
// @Security BearerAuth
// @Router /api/v1/admin/airways-pilots/{id} [delete]
func (h *CatalogHandler) DeleteAffiliation(c *gin.Context) {
	id, ok := parseID(c, "id", "affiliation")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteAffiliation(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete affiliation")
		return
	}

	c.Status(http.StatusNoContent)
}
