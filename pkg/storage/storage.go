package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"resource-catalog/pkg/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrUnknownBucket is returned when a caller addresses a bucket other than the configured one
var ErrUnknownBucket = errors.New("unknown bucket")

// Store writes blobs to an S3-compatible bucket and issues public URLs for them
type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// New creates a Store from the storage config. No network calls are made.
func New(cfg config.StorageConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: PublicBaseURL(cfg),
	}, nil
}

// PublicBaseURL returns the prefix for issued object URLs, falling back to the endpoint
func PublicBaseURL(cfg config.StorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + strings.TrimRight(cfg.Endpoint, "/")
}

// Bucket returns the configured bucket name
func (s *Store) Bucket() string {
	return s.bucket
}

// EnsureBucket creates the configured bucket if it doesn't exist
func (s *Store) EnsureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if found {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Ping checks storage is reachable
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}

// Put writes the blob under name and returns its public URL.
// size may be -1 when unknown.
func (s *Store) Put(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error) {
	if bucket != s.bucket {
		return "", fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}

	_, err := s.client.PutObject(ctx, bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	return ObjectURL(s.publicBaseURL, bucket, name), nil
}

// ObjectURL joins the public base, bucket and escaped object name
func ObjectURL(base, bucket, name string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(name)
}
