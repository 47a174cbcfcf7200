package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

// ListCategories retrieves all categories, oldest first
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.call(ctx, http.MethodGet, "/api/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// InsertCategory creates a new category
func (c *Client) InsertCategory(ctx context.Context, category models.CategoryCreate) (*models.Category, error) {
	var created models.Category
	if err := c.call(ctx, http.MethodPost, "/api/v1/categories", category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory sends the provided fields. The returned row is not read back.
func (c *Client) UpdateCategory(ctx context.Context, id uuid.UUID, update models.CategoryUpdate) error {
	path := fmt.Sprintf("/api/v1/categories/%s", id.String())
	return c.call(ctx, http.MethodPut, path, update, nil)
}

// DeleteCategory deletes a category by ID
func (c *Client) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	path := fmt.Sprintf("/api/v1/categories/%s", id.String())
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// ListResources retrieves all resources, most recent first
func (c *Client) ListResources(ctx context.Context) ([]models.Resource, error) {
	var resources []models.Resource
	if err := c.call(ctx, http.MethodGet, "/api/v1/resources", nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// InsertResource creates a new resource
func (c *Client) InsertResource(ctx context.Context, resource models.ResourceCreate) (*models.Resource, error) {
	var created models.Resource
	if err := c.call(ctx, http.MethodPost, "/api/v1/resources", resource, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateResource sends the provided fields. The returned row is not read back.
func (c *Client) UpdateResource(ctx context.Context, id uuid.UUID, update models.ResourceUpdate) error {
	path := fmt.Sprintf("/api/v1/resources/%s", id.String())
	return c.call(ctx, http.MethodPut, path, update, nil)
}

// DeleteResource deletes a resource by ID
func (c *Client) DeleteResource(ctx context.Context, id uuid.UUID) error {
	path := fmt.Sprintf("/api/v1/resources/%s", id.String())
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// UploadBlob streams r to bucket/name and returns the public URL
func (c *Client) UploadBlob(ctx context.Context, bucket, name string, r io.Reader, size int64) (string, error) {
	path := fmt.Sprintf("/api/v1/storage/%s/objects/%s", url.PathEscape(bucket), url.PathEscape(name))

	req, err := c.buildRequest(ctx, http.MethodPut, path, r)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if size >= 0 {
		req.ContentLength = size
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.doRequest(req, &resp); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return resp.URL, nil
}
