package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resource-catalog/pkg/api/handlers"
	"resource-catalog/pkg/db"
	"resource-catalog/pkg/models"
	"resource-catalog/pkg/services"
	"resource-catalog/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testKey = "test-key"

// memRepo is an in-memory stand-in for the postgres tables
type memRepo struct {
	categories []models.Category
	resources  []models.Resource
	users      map[string]*models.User
}

func (m *memRepo) GetUserByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	if u, ok := m.users[apiKey]; ok {
		return u, nil
	}
	return nil, db.ErrNotFound
}

func (m *memRepo) CreateUser(ctx context.Context, email, apiKey string) (*models.User, error) {
	u := &models.User{ID: uuid.New(), Email: email, APIKey: apiKey}
	m.users[apiKey] = u
	return u, nil
}

func (m *memRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.categories, nil
}

func (m *memRepo) CreateCategory(ctx context.Context, create models.CategoryCreate) (*models.Category, error) {
	c := models.Category{ID: uuid.New(), Name: create.Name, Color: create.Color, Icon: create.Icon,
		Description: create.Description, ResourceType: create.ResourceType, CreatedAt: time.Now()}
	m.categories = append(m.categories, c)
	return &c, nil
}

func (m *memRepo) UpdateCategory(ctx context.Context, id uuid.UUID, update models.CategoryUpdate) (*models.Category, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories[i] = update.Apply(m.categories[i])
			return &m.categories[i], nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *memRepo) SeedCategories(ctx context.Context, seeds []models.CategoryCreate) (int, error) {
	return 0, nil
}

func (m *memRepo) ListResources(ctx context.Context) ([]models.Resource, error) {
	return m.resources, nil
}

func (m *memRepo) CreateResource(ctx context.Context, create models.ResourceCreate) (*models.Resource, error) {
	r := models.Resource{ID: uuid.New(), Title: create.Title, Type: create.Type, URL: create.URL,
		CategoryID: create.CategoryID, Tags: create.Tags, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.resources = append([]models.Resource{r}, m.resources...)
	return &r, nil
}

func (m *memRepo) UpdateResource(ctx context.Context, id uuid.UUID, update models.ResourceUpdate) (*models.Resource, error) {
	for i := range m.resources {
		if m.resources[i].ID == id {
			m.resources[i] = update.Apply(m.resources[i])
			return &m.resources[i], nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memRepo) DeleteResource(ctx context.Context, id uuid.UUID) error {
	for i := range m.resources {
		if m.resources[i].ID == id {
			m.resources = append(m.resources[:i], m.resources[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

type memBlobs struct {
	objects map[string][]byte
}

func (b *memBlobs) Bucket() string { return "resources" }

func (b *memBlobs) Put(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	b.objects[name] = data
	return storage.ObjectURL("http://blobs.test", bucket, name), nil
}

type pinger struct{ err error }

func (p pinger) Ping(ctx context.Context) error { return p.err }

func setupRouter(t *testing.T) (*gin.Engine, *memRepo, *memBlobs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memRepo{users: map[string]*models.User{testKey: {ID: uuid.New(), Email: "ops@example.com", APIKey: testKey}}}
	blobs := &memBlobs{objects: map[string][]byte{}}
	router := NewRouter(Services{
		Users:      services.NewUserService(repo),
		Categories: services.NewCategoryService(repo),
		Resources:  services.NewResourceService(repo),
		Blobs:      services.NewBlobService(blobs),
	}, Options{
		MaxUploadBytes: 1024,
		Health:         map[string]handlers.Pinger{"database": pinger{}},
	}, zap.NewNop())

	return router, repo, blobs
}

func doRequest(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+testKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(data)
}

func TestRequireAuth(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without header, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with a bad key, got %d", w.Code)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	router, repo, _ := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/categories", jsonBody(t, map[string]string{"name": "Docs"}))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Color != models.DefaultCategoryColor || created.ResourceType != models.CategoryTypeDocuments {
		t.Errorf("Expected defaults applied, got %+v", created)
	}

	w = doRequest(router, http.MethodPut, "/api/v1/categories/"+created.ID.String(), jsonBody(t, map[string]string{"color": "#10B981"}))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.categories[0].Color != "#10B981" {
		t.Errorf("Expected color updated, got %q", repo.categories[0].Color)
	}

	w = doRequest(router, http.MethodDelete, "/api/v1/categories/"+created.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}

	w = doRequest(router, http.MethodDelete, "/api/v1/categories/"+created.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for deleted id, got %d", w.Code)
	}
}

func TestCategoryValidation(t *testing.T) {
	router, _, _ := setupRouter(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"color": "#3B82F6"}},
		{"bad color", map[string]string{"name": "x", "color": "blue"}},
		{"short color", map[string]string{"name": "x", "color": "#FFF"}},
		{"bad type", map[string]string{"name": "x", "resource_type": "music"}},
		{"blank name", map[string]string{"name": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/v1/categories", jsonBody(t, tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestResourceLifecycle(t *testing.T) {
	router, repo, _ := setupRouter(t)
	category := uuid.New()

	w := doRequest(router, http.MethodPost, "/api/v1/resources", jsonBody(t, map[string]interface{}{
		"title":       "Report",
		"type":        "link",
		"url":         "https://x.io",
		"category_id": category,
		"tags":        []string{"a", "a", "b"},
	}))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Resource
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if strings.Join(created.Tags, ",") != "a,a,b" {
		t.Errorf("Expected tags a,a,b, got %v", created.Tags)
	}

	w = doRequest(router, http.MethodPut, "/api/v1/resources/"+created.ID.String(), jsonBody(t, map[string]string{"title": "Renamed"}))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.resources[0].Title != "Renamed" {
		t.Errorf("Expected title updated, got %q", repo.resources[0].Title)
	}

	w = doRequest(router, http.MethodGet, "/api/v1/resources", nil)
	var listed []models.Resource
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 {
		t.Errorf("Expected 1 resource, got %d", len(listed))
	}

	w = doRequest(router, http.MethodPut, "/api/v1/resources/"+uuid.NewString(), jsonBody(t, map[string]string{"title": "x"}))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", w.Code)
	}

	w = doRequest(router, http.MethodPut, "/api/v1/resources/not-a-uuid", jsonBody(t, map[string]string{"title": "x"}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed id, got %d", w.Code)
	}
}

func TestResourceValidation(t *testing.T) {
	router, _, _ := setupRouter(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing title", map[string]interface{}{"type": "link", "category_id": uuid.New()}},
		{"bad type", map[string]interface{}{"title": "x", "type": "video", "category_id": uuid.New()}},
		{"missing category", map[string]interface{}{"title": "x", "type": "link"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/v1/resources", jsonBody(t, tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUploadBlob(t *testing.T) {
	router, _, blobs := setupRouter(t)

	w := doRequest(router, http.MethodPut, "/api/v1/storage/resources/objects/1700000000000-abcdef12.txt", strings.NewReader("hello"))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.URL != "http://blobs.test/resources/1700000000000-abcdef12.txt" {
		t.Errorf("Unexpected url %q", resp.URL)
	}
	if string(blobs.objects["1700000000000-abcdef12.txt"]) != "hello" {
		t.Error("Expected object to be stored")
	}

	w = doRequest(router, http.MethodPut, "/api/v1/storage/other/objects/a.txt", strings.NewReader("hello"))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown bucket, got %d", w.Code)
	}

	w = doRequest(router, http.MethodPut, "/api/v1/storage/resources/objects/big.bin", bytes.NewReader(make([]byte, 2048)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413 for oversized upload, got %d", w.Code)
	}
}

func TestUsers(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", jsonBody(t, map[string]string{"email": "new@example.com"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(router, http.MethodPost, "/api/v1/users", jsonBody(t, map[string]string{"email": "not-an-email"}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad email, got %d", w.Code)
	}

	w = doRequest(router, http.MethodGet, "/api/v1/users/me", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ops@example.com") {
		t.Errorf("Expected current user, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", handlers.HealthCheck(map[string]handlers.Pinger{
		"database": pinger{},
		"storage":  pinger{err: errors.New("connection refused")},
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 when a dependency fails, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("Expected failing check in body, got %s", w.Body.String())
	}

	healthy, _, _ := setupRouter(t)
	w = httptest.NewRecorder()
	healthy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}
