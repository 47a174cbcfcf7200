package services

import (
	"bytes"
	"context"
	"io"
	"strings"

	"resource-catalog/pkg/storage"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how much of the body is read to detect the content type
const sniffLen = 3072

// BlobStore is the object storage the blob service writes to
type BlobStore interface {
	Bucket() string
	Put(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error)
}

// BlobService accepts uploads and returns their public URLs
type BlobService struct {
	store BlobStore
}

// NewBlobService creates a new blob service
func NewBlobService(store BlobStore) *BlobService {
	return &BlobService{store: store}
}

// Upload stores body under bucket/name and returns the public URL.
// size is the declared body length, or -1 when unknown.
func (s *BlobService) Upload(ctx context.Context, bucket, name string, body io.Reader, size int64) (string, error) {
	if bucket != s.store.Bucket() {
		return "", storage.ErrUnknownBucket
	}
	if err := validObjectName(name); err != nil {
		return "", err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	head = head[:n]
	if n == 0 {
		return "", invalid("empty upload")
	}

	contentType := mimetype.Detect(head).String()
	return s.store.Put(ctx, bucket, name, io.MultiReader(bytes.NewReader(head), body), size, contentType)
}

func validObjectName(name string) error {
	if name == "" || name == "." || name == ".." {
		return invalid("object name is required")
	}
	if strings.ContainsAny(name, "/\\") {
		return invalid("object name must not contain path separators")
	}
	return nil
}
