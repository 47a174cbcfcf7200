package catalog

import (
	"context"
	"errors"
	"io"
	"time"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

// fakeGateway records calls in order and serves rows from memory
type fakeGateway struct {
	calls      []string
	categories []models.Category
	resources  []models.Resource

	inserted        []models.ResourceCreate
	resourceUpdates []models.ResourceUpdate
	categoryUpdates []models.CategoryUpdate
	uploads         map[string]string

	failOn map[string]error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{uploads: map[string]string{}, failOn: map[string]error{}}
}

func (g *fakeGateway) call(name string) error {
	g.calls = append(g.calls, name)
	return g.failOn[name]
}

func (g *fakeGateway) ListCategories(ctx context.Context) ([]models.Category, error) {
	if err := g.call("ListCategories"); err != nil {
		return nil, err
	}
	return g.categories, nil
}

func (g *fakeGateway) ListResources(ctx context.Context) ([]models.Resource, error) {
	if err := g.call("ListResources"); err != nil {
		return nil, err
	}
	return g.resources, nil
}

func (g *fakeGateway) InsertCategory(ctx context.Context, c models.CategoryCreate) (*models.Category, error) {
	if err := g.call("InsertCategory"); err != nil {
		return nil, err
	}
	return &models.Category{
		ID: uuid.New(), Name: c.Name, Color: c.Color, Description: c.Description,
		Icon: c.Icon, ResourceType: c.ResourceType, CreatedAt: time.Now(),
	}, nil
}

func (g *fakeGateway) UpdateCategory(ctx context.Context, id uuid.UUID, u models.CategoryUpdate) error {
	if err := g.call("UpdateCategory"); err != nil {
		return err
	}
	g.categoryUpdates = append(g.categoryUpdates, u)
	return nil
}

func (g *fakeGateway) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return g.call("DeleteCategory")
}

func (g *fakeGateway) InsertResource(ctx context.Context, r models.ResourceCreate) (*models.Resource, error) {
	if err := g.call("InsertResource"); err != nil {
		return nil, err
	}
	g.inserted = append(g.inserted, r)
	return &models.Resource{
		ID: uuid.New(), Title: r.Title, Type: r.Type, URL: r.URL, Description: r.Description,
		CategoryID: r.CategoryID, Tags: r.Tags, FileName: r.FileName, FileSize: r.FileSize,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}, nil
}

func (g *fakeGateway) UpdateResource(ctx context.Context, id uuid.UUID, u models.ResourceUpdate) error {
	if err := g.call("UpdateResource"); err != nil {
		return err
	}
	g.resourceUpdates = append(g.resourceUpdates, u)
	return nil
}

func (g *fakeGateway) DeleteResource(ctx context.Context, id uuid.UUID) error {
	return g.call("DeleteResource")
}

func (g *fakeGateway) UploadBlob(ctx context.Context, bucket, name string, r io.Reader, size int64) (string, error) {
	if err := g.call("UploadBlob"); err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	g.uploads[name] = string(data)
	return "http://blobs.test/" + bucket + "/" + name, nil
}

var errGateway = errors.New("gateway unavailable")

// recordingAlerter keeps every alert
type recordingAlerter struct {
	alerts []error
}

func (a *recordingAlerter) Alert(err error) {
	a.alerts = append(a.alerts, err)
}
