package catalog

import (
	"context"
	"io"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gateway is the remote table and blob service the store synchronizes with.
// Update calls return no row; the store patches locally instead.
type Gateway interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListResources(ctx context.Context) ([]models.Resource, error)
	InsertCategory(ctx context.Context, category models.CategoryCreate) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, update models.CategoryUpdate) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	InsertResource(ctx context.Context, resource models.ResourceCreate) (*models.Resource, error)
	UpdateResource(ctx context.Context, id uuid.UUID, update models.ResourceUpdate) error
	DeleteResource(ctx context.Context, id uuid.UUID) error
	UploadBlob(ctx context.Context, bucket, name string, r io.Reader, size int64) (string, error)
}

// Alerter shows a failure to the user
type Alerter interface {
	Alert(err error)
}

// AlertFunc adapts a function to Alerter
type AlertFunc func(err error)

func (f AlertFunc) Alert(err error) { f(err) }

// LogAlerter writes alerts to a logger. Used when no UI is attached.
type LogAlerter struct {
	Logger *zap.Logger
}

func (a LogAlerter) Alert(err error) {
	a.Logger.Warn("catalog alert", zap.Error(err))
}

// SessionStore persists the authentication flag between runs
type SessionStore interface {
	Load() (bool, error)
	Save(authenticated bool) error
}
