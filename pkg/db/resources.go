package db

import (
	"context"
	"fmt"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const resourceColumns = `id, title, type, url, description, category_id, tags, file_name, file_size, created_at, updated_at`

func scanResource(row pgx.Row, r *models.Resource) error {
	return row.Scan(
		&r.ID,
		&r.Title,
		&r.Type,
		&r.URL,
		&r.Description,
		&r.CategoryID,
		&r.Tags,
		&r.FileName,
		&r.FileSize,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
}

// ListResources retrieves all resources, most recent first
func (db *DB) ListResources(ctx context.Context) ([]models.Resource, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+resourceColumns+`
		 FROM resources
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		var r models.Resource
		if err := scanResource(rows, &r); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, r)
	}

	return resources, rows.Err()
}

// GetResourceByID retrieves a resource by ID
func (db *DB) GetResourceByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	var r models.Resource
	err := scanResource(db.Pool.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id), &r)
	if err != nil {
		return nil, fmt.Errorf("failed to get resource: %w", notFound(err, "resource"))
	}
	return &r, nil
}

// CreateResource creates a new resource
func (db *DB) CreateResource(ctx context.Context, create models.ResourceCreate) (*models.Resource, error) {
	tags := create.Tags
	if tags == nil {
		tags = []string{}
	}

	var r models.Resource
	err := scanResource(db.Pool.QueryRow(ctx,
		`INSERT INTO resources (title, type, url, description, category_id, tags, file_name, file_size)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+resourceColumns,
		create.Title, create.Type, create.URL, create.Description, create.CategoryID,
		tags, create.FileName, create.FileSize,
	), &r)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return &r, nil
}

// UpdateResource updates the provided fields of a resource and bumps updated_at
func (db *DB) UpdateResource(ctx context.Context, id uuid.UUID, update models.ResourceUpdate) (*models.Resource, error) {
	b := newUpdate("resources", id)
	b.touch("updated_at", "NOW()")

	if update.Title != nil {
		b.set("title", *update.Title)
	}
	if update.Type != nil {
		b.set("type", *update.Type)
	}
	if update.URL != nil {
		b.set("url", *update.URL)
	}
	if update.Description != nil {
		b.set("description", *update.Description)
	}
	if update.CategoryID != nil {
		b.set("category_id", *update.CategoryID)
	}
	if update.Tags != nil {
		tags := *update.Tags
		if tags == nil {
			tags = []string{}
		}
		b.set("tags", tags)
	}
	if update.FileName != nil {
		b.set("file_name", *update.FileName)
	}
	if update.FileSize != nil {
		b.set("file_size", *update.FileSize)
	}

	var r models.Resource
	if err := scanResource(db.Pool.QueryRow(ctx, b.sql(resourceColumns), b.args...), &r); err != nil {
		return nil, fmt.Errorf("failed to update resource: %w", notFound(err, "resource"))
	}
	return &r, nil
}

// DeleteResource deletes a resource
func (db *DB) DeleteResource(ctx context.Context, id uuid.UUID) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("resource %w", ErrNotFound)
	}

	return nil
}
