package auth

import (
	"net/http"
	"strings"

	"balloon-flights-backend/internal/logger"
	"balloon-flights-backend/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator parses bearer tokens into claims
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		// Set user context
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("is_staff", claims.IsStaff)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(logger.ContextWithUsername(c.Request.Context(), claims.Username))

		c.Next()
	}
}

// RequireStaff rejects authenticated users without the staff flag. It must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !claims.IsStaff {
			logger.WithContext(c.Request.Context()).Warn("Non-staff user attempted to reach the admin surface")
			c.JSON(http.StatusForbidden, gin.H{"error": "Staff privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

// ActorFrom returns the authenticated actor set by RequireAuth
func ActorFrom(c *gin.Context) (policy.Actor, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok || claims.UserID == uuid.Nil {
		return policy.Actor{}, false
	}
	return claims.Actor(), true
}
