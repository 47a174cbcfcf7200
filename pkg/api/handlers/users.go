package handlers

import (
	"net/http"

	"resource-catalog/pkg/api/middleware"
	"resource-catalog/pkg/models"
	"resource-catalog/pkg/services"

	"github.com/gin-gonic/gin"
)

// RegisterUser issues an API key for an email. The key is only shown in this response.
func RegisterUser(service *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UserCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := service.Register(c.Request.Context(), req.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// Me returns the caller resolved from the API key
func Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}
