//go:build unit

package api_test

import (
	"net/http"

	"campfinder/internal/domain/user"
	"campfinder/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// identity is what the stubbed auth middleware puts on the context.
type identity struct {
	userID uuid.UUID
	role   user.Role
}

// stubAuth mimics RequireAuth: any Authorization header authenticates as *who.
func stubAuth(who *identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetIdentity(c, who.userID, who.role)
		c.Next()
	}
}
