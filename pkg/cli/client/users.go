package client

import (
	"context"
	"fmt"
	"net/http"

	"resource-catalog/pkg/models"
)

// CreateUser registers an email and returns the user with its API key
func (c *Client) CreateUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	payload := models.UserCreate{Email: email}
	if err := c.call(ctx, http.MethodPost, "/api/v1/users", payload, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// CurrentUser returns the user owning the configured API key
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.call(ctx, http.MethodGet, "/api/v1/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
