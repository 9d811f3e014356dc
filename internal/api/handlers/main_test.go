package handlers_test

import (
	"balloon-flights-backend/internal/auth"
	"balloon-flights-backend/internal/policy"

	"github.com/gin-gonic/gin"
)

// withActor stands in for RequireAuth by placing claims for actor on the context
func withActor(actor policy.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("auth_claims", &auth.AuthClaims{
			UserID:   actor.UserID,
			Username: actor.Username,
			IsStaff:  actor.IsStaff,
		})
		c.Next()
	}
}
