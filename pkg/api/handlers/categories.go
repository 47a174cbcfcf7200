package handlers

import (
	"net/http"

	"resource-catalog/pkg/models"
	"resource-catalog/pkg/services"

	"github.com/gin-gonic/gin"
)

// ListCategories lists all categories, oldest first
func ListCategories(service *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := service.ListCategories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory creates a new category
func CreateCategory(service *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var create models.CategoryCreate
		if err := c.ShouldBindJSON(&create); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category, err := service.CreateCategory(c.Request.Context(), create)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory updates an existing category
func UpdateCategory(service *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "category")
		if !ok {
			return
		}

		var update models.CategoryUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category, err := service.UpdateCategory(c.Request.Context(), id, update)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory deletes a category without touching its resources
func DeleteCategory(service *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "category")
		if !ok {
			return
		}

		if err := service.DeleteCategory(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
