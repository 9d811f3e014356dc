package auth

import (
	"net/http"
	"strings"

	apperrors "balloon-flights-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange username and password for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Account credentials"
// @Success 200 {object} LoginResponse "Signed token"
// @Failure 400 {object} map[string]interface{} "Malformed request"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Register handles POST /api/auth/register
// @Summary Register an account
// @Description Create a regular account and return a bearer token for it
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "New account credentials"
// @Success 201 {object} LoginResponse "Signed token for the new account"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 409 {object} map[string]interface{} "Username taken"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if fields, ok := apperrors.AsValidationErrors(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...")
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	// Validate token
	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
