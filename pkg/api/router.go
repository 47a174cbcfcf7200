package api

import (
	"resource-catalog/pkg/api/handlers"
	"resource-catalog/pkg/api/middleware"
	"resource-catalog/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services bundles what the router dispatches to
type Services struct {
	Users      *services.UserService
	Categories *services.CategoryService
	Resources  *services.ResourceService
	Blobs      *services.BlobService
}

// Options tunes the router
type Options struct {
	MaxUploadBytes int64
	Health         map[string]handlers.Pinger
}

func NewRouter(svc Services, opts Options, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ErrorHandler(logger))

	// Health check
	router.GET("/health", handlers.HealthCheck(opts.Health))

	auth := middleware.RequireAuth(svc.Users)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Categories
		categories := v1.Group("/categories")
		categories.Use(auth)
		{
			categories.GET("", handlers.ListCategories(svc.Categories))
			categories.POST("", handlers.CreateCategory(svc.Categories))
			categories.PUT("/:id", handlers.UpdateCategory(svc.Categories))
			categories.DELETE("/:id", handlers.DeleteCategory(svc.Categories))
		}

		// Resources
		resources := v1.Group("/resources")
		resources.Use(auth)
		{
			resources.GET("", handlers.ListResources(svc.Resources))
			resources.POST("", handlers.CreateResource(svc.Resources))
			resources.PUT("/:id", handlers.UpdateResource(svc.Resources))
			resources.DELETE("/:id", handlers.DeleteResource(svc.Resources))
		}

		// Blob storage
		blobs := v1.Group("/storage")
		blobs.Use(auth)
		{
			blobs.PUT("/:bucket/objects/:name", handlers.UploadBlob(svc.Blobs, opts.MaxUploadBytes))
		}

		// Users
		users := v1.Group("/users")
		{
			users.POST("", handlers.RegisterUser(svc.Users))
			users.GET("/me", auth, handlers.Me)
		}
	}

	return router
}
