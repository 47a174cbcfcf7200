package services

import (
	"context"
	"strings"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

// CategoryRepository is the persistence the category service needs
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, create models.CategoryCreate) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, update models.CategoryUpdate) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	SeedCategories(ctx context.Context, seeds []models.CategoryCreate) (int, error)
}

// DefaultCategories are seeded into an empty catalog
var DefaultCategories = []models.CategoryCreate{
	{
		Name:         "Important Documents",
		Color:        "#3B82F6",
		Description:  "Official documents and certifications",
		Icon:         "folder",
		ResourceType: models.CategoryTypeDocuments,
	},
	{
		Name:         "Useful Links",
		Color:        "#10B981",
		Description:  "Web links of interest",
		Icon:         "folder",
		ResourceType: models.CategoryTypeLinks,
	},
	{
		Name:         "Media Resources",
		Color:        "#F59E0B",
		Description:  "Images, videos and audio",
		Icon:         "folder",
		ResourceType: models.CategoryTypeMedia,
	},
}

// CategoryService handles business logic for category operations
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListCategories retrieves all categories, oldest first
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

// CreateCategory creates a category, filling defaults for color, icon and type
func (s *CategoryService) CreateCategory(ctx context.Context, create models.CategoryCreate) (*models.Category, error) {
	create.Name = strings.TrimSpace(create.Name)
	if create.Name == "" {
		return nil, invalid("name is required")
	}
	create = create.WithDefaults()
	if !create.ResourceType.Valid() {
		return nil, invalid("unknown resource type %q", create.ResourceType)
	}

	return s.repo.CreateCategory(ctx, create)
}

// UpdateCategory updates the provided fields of a category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, update models.CategoryUpdate) (*models.Category, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, invalid("name cannot be blank")
		}
		update.Name = &name
	}
	if update.ResourceType != nil && !update.ResourceType.Valid() {
		return nil, invalid("unknown resource type %q", *update.ResourceType)
	}

	return s.repo.UpdateCategory(ctx, id, update)
}

// DeleteCategory deletes a category. Resources pointing at it keep the stale id.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}

// SeedDefaults inserts DefaultCategories when no categories exist
func (s *CategoryService) SeedDefaults(ctx context.Context) (int, error) {
	return s.repo.SeedCategories(ctx, DefaultCategories)
}
