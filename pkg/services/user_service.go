package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"resource-catalog/pkg/models"
)

// UserRepository is the persistence the user service needs
type UserRepository interface {
	GetUserByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
	CreateUser(ctx context.Context, email, apiKey string) (*models.User, error)
}

// UserService issues and checks gateway API keys
type UserService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a user with a freshly generated API key
func (s *UserService) Register(ctx context.Context, email string) (*models.User, error) {
	apiKey, err := generateAPIKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	return s.repo.CreateUser(ctx, email, apiKey)
}

// Authenticate resolves an API key to its user
func (s *UserService) Authenticate(ctx context.Context, apiKey string) (*models.User, error) {
	if apiKey == "" {
		return nil, invalid("missing API key")
	}
	return s.repo.GetUserByAPIKey(ctx, apiKey)
}

// generateAPIKey generates a random 32-byte hex string
func generateAPIKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
