package handlers

import (
	"net/http"

	"resource-catalog/pkg/models"
	"resource-catalog/pkg/services"

	"github.com/gin-gonic/gin"
)

// ListResources lists all resources, most recent first
func ListResources(service *services.ResourceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resources, err := service.ListResources(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, resources)
	}
}

// CreateResource creates a new resource
func CreateResource(service *services.ResourceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var create models.ResourceCreate
		if err := c.ShouldBindJSON(&create); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resource, err := service.CreateResource(c.Request.Context(), create)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, resource)
	}
}

// UpdateResource updates an existing resource
func UpdateResource(service *services.ResourceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "resource")
		if !ok {
			return
		}

		var update models.ResourceUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resource, err := service.UpdateResource(c.Request.Context(), id, update)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, resource)
	}
}

// DeleteResource deletes a resource
func DeleteResource(service *services.ResourceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "resource")
		if !ok {
			return
		}

		if err := service.DeleteResource(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
