package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resource-catalog/pkg/config"
)

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StorageConfig
		want string
	}{
		{"endpoint http", config.StorageConfig{Endpoint: "localhost:9000"}, "http://localhost:9000"},
		{"endpoint https", config.StorageConfig{Endpoint: "s3.example.com", UseSSL: true}, "https://s3.example.com"},
		{"explicit", config.StorageConfig{Endpoint: "minio:9000", PublicBaseURL: "https://cdn.example.com/"}, "https://cdn.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublicBaseURL(tt.cfg); got != tt.want {
				t.Errorf("PublicBaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjectURL(t *testing.T) {
	got := ObjectURL("http://localhost:9000/", "resources", "1700000000000-abcdef12.pdf")
	want := "http://localhost:9000/resources/1700000000000-abcdef12.pdf"
	if got != want {
		t.Errorf("ObjectURL() = %q, want %q", got, want)
	}

	escaped := ObjectURL("http://h", "resources", "a b.txt")
	if !strings.HasSuffix(escaped, "/a%20b.txt") {
		t.Errorf("Expected escaped object name, got %q", escaped)
	}
}

func TestPutRejectsOtherBucket(t *testing.T) {
	store, err := New(config.StorageConfig{Endpoint: "localhost:9000", Bucket: "resources"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if store.Bucket() != "resources" {
		t.Errorf("Expected bucket resources, got %q", store.Bucket())
	}

	_, err = store.Put(context.Background(), "other", "x.txt", strings.NewReader("x"), 1, "text/plain")
	if !errors.Is(err, ErrUnknownBucket) {
		t.Errorf("Expected ErrUnknownBucket, got %v", err)
	}
}
