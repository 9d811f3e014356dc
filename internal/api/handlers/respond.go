package handlers

import (
	"errors"
	"net/http"

	"balloon-flights-backend/internal/auth"
	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/logger"
	"balloon-flights-backend/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error, action string) {
	if fields, ok := apperrors.AsValidationErrors(err); ok {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsIntegrity(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": action, "details": err.Error()})
	}
}

// respondBadRequestBody answers 413 for bodies cut off by the size cap and 400 otherwise
func respondBadRequestBody(c *gin.Context, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large", "limit": tooLarge.Limit})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": err.Error()})
}

// parseID reads a UUID path parameter, answering 400 when it is malformed
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// requireActor returns the authenticated actor, answering 401 when there is none
func requireActor(c *gin.Context) (policy.Actor, bool) {
	actor, ok := auth.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingActor.Error()})
		return policy.Actor{}, false
	}
	return actor, true
}
