package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

func TestAuthorizationHeader(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c := NewClient(server.URL+"/", "secret")
	if _, err := c.ListCategories(context.Background()); err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if got != "Bearer secret" {
		t.Errorf("Expected bearer header, got %q", got)
	}
}

func TestAPIErrorFormatting(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"json error", http.StatusBadRequest, `{"error":"title is required"}`, "API error (400): title is required"},
		{"raw body", http.StatusBadGateway, "upstream down", "API error (502): upstream down"},
		{"empty body", http.StatusNotFound, "", "API error (404): 404 Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewClient(server.URL, "").DeleteResource(context.Background(), uuid.New())
			if err == nil || err.Error() != tt.want {
				t.Errorf("Expected %q, got %v", tt.want, err)
			}
		})
	}
}

func TestInsertResource(t *testing.T) {
	category := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/resources" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		var create models.ResourceCreate
		if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Resource{
			ID: uuid.New(), Title: create.Title, Type: create.Type, CategoryID: create.CategoryID, Tags: create.Tags,
		})
	}))
	defer server.Close()

	r, err := NewClient(server.URL, "k").InsertResource(context.Background(), models.ResourceCreate{
		Title: "Report", Type: models.ResourceTypeLink, CategoryID: category, Tags: []string{"a"},
	})
	if err != nil {
		t.Fatalf("InsertResource failed: %v", err)
	}
	if r.Title != "Report" || r.CategoryID != category {
		t.Errorf("Unexpected resource %+v", r)
	}
}

func TestUpdateSendsOnlyProvidedFields(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("Expected PUT, got %s", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"title":"ignored"}`))
	}))
	defer server.Close()

	title := "New"
	err := NewClient(server.URL, "k").UpdateResource(context.Background(), uuid.New(), models.ResourceUpdate{Title: &title})
	if err != nil {
		t.Fatalf("UpdateResource failed: %v", err)
	}
	if len(body) != 1 || body["title"] != "New" {
		t.Errorf("Expected only title to be sent, got %v", body)
	}
}

func TestUploadBlob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/storage/resources/objects/1-abc.pdf" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/octet-stream" {
			t.Errorf("Expected octet-stream, got %q", ct)
		}
		data, _ := io.ReadAll(r.Body)
		if string(data) != "pdf-bytes" {
			t.Errorf("Unexpected body %q", data)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"url":"http://blobs/resources/1-abc.pdf"}`))
	}))
	defer server.Close()

	url, err := NewClient(server.URL, "k").UploadBlob(context.Background(), "resources", "1-abc.pdf", strings.NewReader("pdf-bytes"), 9)
	if err != nil {
		t.Fatalf("UploadBlob failed: %v", err)
	}
	if url != "http://blobs/resources/1-abc.pdf" {
		t.Errorf("Unexpected url %q", url)
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClient(server.URL, "").ListResources(ctx); err == nil {
		t.Error("Expected canceled context to fail the request")
	}
}

func TestStatusHelpers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid API key"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "stale").ListCategories(context.Background())
	if !IsUnauthorized(err) {
		t.Errorf("Expected unauthorized error, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "invalid API key" {
		t.Errorf("Expected gateway message kept, got %v", err)
	}
}
