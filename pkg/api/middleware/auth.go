package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"resource-catalog/pkg/db"
	"resource-catalog/pkg/models"
	"resource-catalog/pkg/services"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// Authenticator resolves an API key to a user
type Authenticator interface {
	Authenticate(ctx context.Context, apiKey string) (*models.User, error)
}

func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract API key from "Bearer <key>" or just "<key>"
		apiKey := strings.TrimPrefix(authHeader, "Bearer ")
		apiKey = strings.TrimSpace(apiKey)

		user, err := auth.Authenticate(c.Request.Context(), apiKey)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) || errors.Is(err, services.ErrInvalidInput) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			} else {
				_ = c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check API key"})
			}
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user RequireAuth attached to c
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
