package services

import (
	"context"
	"io"
	"time"

	"resource-catalog/pkg/db"
	"resource-catalog/pkg/models"
	"resource-catalog/pkg/storage"

	"github.com/google/uuid"
)

type fakeResources struct {
	rows    []models.Resource
	created []models.ResourceCreate
	updates []models.ResourceUpdate
}

func (f *fakeResources) ListResources(ctx context.Context) ([]models.Resource, error) {
	return f.rows, nil
}

func (f *fakeResources) CreateResource(ctx context.Context, create models.ResourceCreate) (*models.Resource, error) {
	f.created = append(f.created, create)
	r := models.Resource{
		ID:          uuid.New(),
		Title:       create.Title,
		Type:        create.Type,
		URL:         create.URL,
		Description: create.Description,
		CategoryID:  create.CategoryID,
		Tags:        create.Tags,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.rows = append([]models.Resource{r}, f.rows...)
	return &r, nil
}

func (f *fakeResources) UpdateResource(ctx context.Context, id uuid.UUID, update models.ResourceUpdate) (*models.Resource, error) {
	for i, r := range f.rows {
		if r.ID == id {
			f.updates = append(f.updates, update)
			f.rows[i] = update.Apply(r)
			return &f.rows[i], nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeResources) DeleteResource(ctx context.Context, id uuid.UUID) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

type fakeCategories struct {
	rows   []models.Category
	seeded []models.CategoryCreate
}

func (f *fakeCategories) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.rows, nil
}

func (f *fakeCategories) CreateCategory(ctx context.Context, create models.CategoryCreate) (*models.Category, error) {
	c := models.Category{
		ID:           uuid.New(),
		Name:         create.Name,
		Color:        create.Color,
		Description:  create.Description,
		Icon:         create.Icon,
		ResourceType: create.ResourceType,
		CreatedAt:    time.Now(),
	}
	f.rows = append(f.rows, c)
	return &c, nil
}

func (f *fakeCategories) UpdateCategory(ctx context.Context, id uuid.UUID, update models.CategoryUpdate) (*models.Category, error) {
	for i, c := range f.rows {
		if c.ID == id {
			f.rows[i] = update.Apply(c)
			return &f.rows[i], nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeCategories) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	for i, c := range f.rows {
		if c.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakeCategories) SeedCategories(ctx context.Context, seeds []models.CategoryCreate) (int, error) {
	if len(f.rows) > 0 {
		return 0, nil
	}
	for _, seed := range seeds {
		f.seeded = append(f.seeded, seed)
		f.CreateCategory(ctx, seed.WithDefaults())
	}
	return len(seeds), nil
}

type fakeBlobs struct {
	bucket      string
	name        string
	data        []byte
	contentType string
}

func (f *fakeBlobs) Bucket() string { return f.bucket }

func (f *fakeBlobs) Put(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.name, f.data, f.contentType = name, data, contentType
	return storage.ObjectURL("http://blobs.test", bucket, name), nil
}
