package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"resource-catalog/pkg/db"
	"resource-catalog/pkg/models"
	"resource-catalog/pkg/storage"

	"github.com/google/uuid"
)

func TestCreateResourceCleansTags(t *testing.T) {
	repo := &fakeResources{}
	service := NewResourceService(repo)

	url := "https://x.io"
	r, err := service.CreateResource(context.Background(), models.ResourceCreate{
		Title:      "  Report ",
		Type:       models.ResourceTypeLink,
		URL:        &url,
		CategoryID: uuid.New(),
		Tags:       []string{"a", " ", "a", "", "b"},
	})
	if err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}

	if r.Title != "Report" {
		t.Errorf("Expected trimmed title, got %q", r.Title)
	}
	want := []string{"a", "a", "b"}
	if strings.Join(r.Tags, ",") != strings.Join(want, ",") {
		t.Errorf("Expected tags %v, got %v", want, r.Tags)
	}
}

func TestCreateResourceRejectsInvalid(t *testing.T) {
	service := NewResourceService(&fakeResources{})
	tests := []struct {
		name   string
		create models.ResourceCreate
	}{
		{"blank title", models.ResourceCreate{Title: "   ", Type: models.ResourceTypeLink, CategoryID: uuid.New()}},
		{"bad type", models.ResourceCreate{Title: "x", Type: "video", CategoryID: uuid.New()}},
		{"no category", models.ResourceCreate{Title: "x", Type: models.ResourceTypeFile}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateResource(context.Background(), tt.create)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateResourceAllowsUnknownCategory(t *testing.T) {
	repo := &fakeResources{}
	service := NewResourceService(repo)

	dangling := uuid.New()
	r, err := service.CreateResource(context.Background(), models.ResourceCreate{
		Title: "Orphan", Type: models.ResourceTypeLink, CategoryID: dangling,
	})
	if err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}
	if r.CategoryID != dangling {
		t.Errorf("Expected category id to be stored as given")
	}
}

func TestUpdateResource(t *testing.T) {
	repo := &fakeResources{}
	service := NewResourceService(repo)
	ctx := context.Background()

	r, _ := service.CreateResource(ctx, models.ResourceCreate{Title: "Old", Type: models.ResourceTypeLink, CategoryID: uuid.New()})

	blank := " "
	if _, err := service.UpdateResource(ctx, r.ID, models.ResourceUpdate{Title: &blank}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank title, got %v", err)
	}

	tags := []string{"x", ""}
	updated, err := service.UpdateResource(ctx, r.ID, models.ResourceUpdate{Tags: &tags})
	if err != nil {
		t.Fatalf("UpdateResource failed: %v", err)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "x" {
		t.Errorf("Expected blank tag dropped, got %v", updated.Tags)
	}

	if _, err := service.UpdateResource(ctx, uuid.New(), models.ResourceUpdate{Tags: &tags}); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestCreateCategoryDefaults(t *testing.T) {
	service := NewCategoryService(&fakeCategories{})

	c, err := service.CreateCategory(context.Background(), models.CategoryCreate{Name: " Docs "})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if c.Name != "Docs" {
		t.Errorf("Expected trimmed name, got %q", c.Name)
	}
	if c.Color != models.DefaultCategoryColor || c.Icon != models.DefaultCategoryIcon || c.ResourceType != models.CategoryTypeDocuments {
		t.Errorf("Expected defaults, got %+v", c)
	}

	if _, err := service.CreateCategory(context.Background(), models.CategoryCreate{Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := service.CreateCategory(context.Background(), models.CategoryCreate{Name: "x", ResourceType: "music"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for bad type, got %v", err)
	}
}

func TestSeedDefaults(t *testing.T) {
	repo := &fakeCategories{}
	service := NewCategoryService(repo)

	n, err := service.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 seeded categories, got %d", n)
	}
	wantTypes := []models.CategoryType{models.CategoryTypeDocuments, models.CategoryTypeLinks, models.CategoryTypeMedia}
	for i, c := range repo.rows {
		if c.ResourceType != wantTypes[i] {
			t.Errorf("Seed %d: expected type %s, got %s", i, wantTypes[i], c.ResourceType)
		}
	}

	n, _ = service.SeedDefaults(context.Background())
	if n != 0 {
		t.Errorf("Expected no seeding into a non-empty table, got %d", n)
	}
}

func TestUploadDetectsContentType(t *testing.T) {
	blobs := &fakeBlobs{bucket: "resources"}
	service := NewBlobService(blobs)

	body := []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")
	url, err := service.Upload(context.Background(), "resources", "1700000000000-abcdef12.pdf", bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if url != "http://blobs.test/resources/1700000000000-abcdef12.pdf" {
		t.Errorf("Unexpected url %q", url)
	}
	if blobs.contentType != "application/pdf" {
		t.Errorf("Expected application/pdf, got %q", blobs.contentType)
	}
	if !bytes.Equal(blobs.data, body) {
		t.Error("Expected stored body to match upload")
	}
}

func TestUploadLargerThanSniffWindow(t *testing.T) {
	blobs := &fakeBlobs{bucket: "resources"}
	service := NewBlobService(blobs)

	body := bytes.Repeat([]byte("hello world\n"), 1000)
	if _, err := service.Upload(context.Background(), "resources", "notes.txt", bytes.NewReader(body), -1); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if len(blobs.data) != len(body) {
		t.Errorf("Expected %d bytes stored, got %d", len(body), len(blobs.data))
	}
	if !strings.HasPrefix(blobs.contentType, "text/plain") {
		t.Errorf("Expected text/plain, got %q", blobs.contentType)
	}
}

func TestUploadRejects(t *testing.T) {
	service := NewBlobService(&fakeBlobs{bucket: "resources"})
	ctx := context.Background()

	if _, err := service.Upload(ctx, "other", "a.txt", strings.NewReader("x"), 1); !errors.Is(err, storage.ErrUnknownBucket) {
		t.Errorf("Expected ErrUnknownBucket, got %v", err)
	}
	if _, err := service.Upload(ctx, "resources", "..", strings.NewReader("x"), 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for bad name, got %v", err)
	}
	if _, err := service.Upload(ctx, "resources", "empty.txt", strings.NewReader(""), 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty body, got %v", err)
	}
}

type fakeUsers struct {
	users map[string]*models.User
}

func (f *fakeUsers) GetUserByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	if u, ok := f.users[apiKey]; ok {
		return u, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeUsers) CreateUser(ctx context.Context, email, apiKey string) (*models.User, error) {
	u := &models.User{ID: uuid.New(), Email: email, APIKey: apiKey}
	f.users[apiKey] = u
	return u, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	service := NewUserService(&fakeUsers{users: map[string]*models.User{}})
	ctx := context.Background()

	u, err := service.Register(ctx, "ops@example.com")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if len(u.APIKey) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(u.APIKey))
	}

	got, err := service.Authenticate(ctx, u.APIKey)
	if err != nil || got.Email != "ops@example.com" {
		t.Errorf("Expected to authenticate registered key, got %v, %v", got, err)
	}
	if _, err := service.Authenticate(ctx, "nope"); err == nil {
		t.Error("Expected unknown key to fail")
	}
	if _, err := service.Authenticate(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty key, got %v", err)
	}
}
