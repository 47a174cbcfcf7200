package handlers

import (
	"errors"
	"net/http"

	"resource-catalog/pkg/db"
	"resource-catalog/pkg/services"
	"resource-catalog/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, db.ErrNotFound), errors.Is(err, storage.ErrUnknownBucket):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &tooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseID reads the :id path parameter
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " ID"})
		return uuid.Nil, false
	}
	return id, true
}
