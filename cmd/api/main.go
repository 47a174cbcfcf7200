package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resource-catalog/pkg/api"
	"resource-catalog/pkg/api/handlers"
	"resource-catalog/pkg/config"
	"resource-catalog/pkg/db"
	"resource-catalog/pkg/logging"
	"resource-catalog/pkg/services"
	"resource-catalog/pkg/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	// Initialize database
	database, err := db.New(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}

	categories := services.NewCategoryService(database)
	if cfg.API.SeedCategories {
		n, err := categories.SeedDefaults(ctx)
		if err != nil {
			logger.Fatal("failed to seed categories", zap.Error(err))
		}
		if n > 0 {
			logger.Info("seeded default categories", zap.Int("count", n))
		}
	}

	// Initialize blob storage
	blobs, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to create storage client", zap.Error(err))
	}
	if err := blobs.EnsureBucket(ctx); err != nil {
		logger.Fatal("failed to prepare bucket", zap.String("bucket", blobs.Bucket()), zap.Error(err))
	}

	// Initialize router
	router := api.NewRouter(api.Services{
		Users:      services.NewUserService(database),
		Categories: categories,
		Resources:  services.NewResourceService(database),
		Blobs:      services.NewBlobService(blobs),
	}, api.Options{
		MaxUploadBytes: int64(cfg.Storage.MaxUploadMB) << 20,
		Health: map[string]handlers.Pinger{
			"database": database,
			"storage":  blobs,
		},
	}, logger)

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second, // uploads can be large
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("gateway starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
