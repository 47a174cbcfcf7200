package handlers

import (
	"fmt"
	"net/http"

	"resource-catalog/pkg/services"

	"github.com/gin-gonic/gin"
)

// UploadBlob stores the raw request body as bucket/name and returns its public URL
func UploadBlob(service *services.BlobService, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("upload exceeds %d bytes", maxBytes),
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		url, err := service.Upload(
			c.Request.Context(),
			c.Param("bucket"),
			c.Param("name"),
			c.Request.Body,
			c.Request.ContentLength,
		)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}
