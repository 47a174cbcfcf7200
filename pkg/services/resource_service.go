package services

import (
	"context"
	"strings"

	"resource-catalog/pkg/models"
	"resource-catalog/pkg/utils"

	"github.com/google/uuid"
)

// ResourceRepository is the persistence the resource service needs
type ResourceRepository interface {
	ListResources(ctx context.Context) ([]models.Resource, error)
	CreateResource(ctx context.Context, create models.ResourceCreate) (*models.Resource, error)
	UpdateResource(ctx context.Context, id uuid.UUID, update models.ResourceUpdate) (*models.Resource, error)
	DeleteResource(ctx context.Context, id uuid.UUID) error
}

// ResourceService handles business logic for resource operations
type ResourceService struct {
	repo ResourceRepository
}

// NewResourceService creates a new resource service
func NewResourceService(repo ResourceRepository) *ResourceService {
	return &ResourceService{repo: repo}
}

// ListResources retrieves all resources, most recent first
func (s *ResourceService) ListResources(ctx context.Context) ([]models.Resource, error) {
	return s.repo.ListResources(ctx)
}

// CreateResource creates a new resource.
// The category reference is stored as given; it is not checked against the categories table.
func (s *ResourceService) CreateResource(ctx context.Context, create models.ResourceCreate) (*models.Resource, error) {
	create.Title = strings.TrimSpace(create.Title)
	if create.Title == "" {
		return nil, invalid("title is required")
	}
	if !create.Type.Valid() {
		return nil, invalid("unknown resource type %q", create.Type)
	}
	if create.CategoryID == uuid.Nil {
		return nil, invalid("category_id is required")
	}
	create.Tags = utils.CleanTags(create.Tags)

	return s.repo.CreateResource(ctx, create)
}

// UpdateResource updates the provided fields of a resource
func (s *ResourceService) UpdateResource(ctx context.Context, id uuid.UUID, update models.ResourceUpdate) (*models.Resource, error) {
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, invalid("title cannot be blank")
		}
		update.Title = &title
	}
	if update.Type != nil && !update.Type.Valid() {
		return nil, invalid("unknown resource type %q", *update.Type)
	}
	if update.CategoryID != nil && *update.CategoryID == uuid.Nil {
		return nil, invalid("category_id cannot be empty")
	}
	if update.Tags != nil {
		tags := utils.CleanTags(*update.Tags)
		update.Tags = &tags
	}

	return s.repo.UpdateResource(ctx, id, update)
}

// DeleteResource deletes a resource
func (s *ResourceService) DeleteResource(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteResource(ctx, id)
}
