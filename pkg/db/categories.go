package db

import (
	"context"
	"fmt"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const categoryColumns = `id, name, color, description, icon, resource_type, created_at`

func scanCategory(row pgx.Row, c *models.Category) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Color,
		&c.Description,
		&c.Icon,
		&c.ResourceType,
		&c.CreatedAt,
	)
}

// ListCategories retrieves all categories, oldest first
func (db *DB) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+categoryColumns+`
		 FROM categories
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetCategoryByID retrieves a category by ID
func (db *DB) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var c models.Category
	err := scanCategory(db.Pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id), &c)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", notFound(err, "category"))
	}
	return &c, nil
}

// CreateCategory creates a new category
func (db *DB) CreateCategory(ctx context.Context, create models.CategoryCreate) (*models.Category, error) {
	create = create.WithDefaults()

	var c models.Category
	err := scanCategory(db.Pool.QueryRow(ctx,
		`INSERT INTO categories (name, color, description, icon, resource_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+categoryColumns,
		create.Name, create.Color, create.Description, create.Icon, create.ResourceType,
	), &c)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &c, nil
}

// UpdateCategory updates the provided fields of a category
func (db *DB) UpdateCategory(ctx context.Context, id uuid.UUID, update models.CategoryUpdate) (*models.Category, error) {
	b := newUpdate("categories", id)
	if update.Name != nil {
		b.set("name", *update.Name)
	}
	if update.Color != nil {
		b.set("color", *update.Color)
	}
	if update.Description != nil {
		b.set("description", *update.Description)
	}
	if update.Icon != nil {
		b.set("icon", *update.Icon)
	}
	if update.ResourceType != nil {
		b.set("resource_type", *update.ResourceType)
	}

	// Nothing to write: behave like a read so callers still get the row
	if b.empty() {
		return db.GetCategoryByID(ctx, id)
	}

	var c models.Category
	if err := scanCategory(db.Pool.QueryRow(ctx, b.sql(categoryColumns), b.args...), &c); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", notFound(err, "category"))
	}
	return &c, nil
}

// DeleteCategory deletes a category. Resources referencing it are left alone.
func (db *DB) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %w", ErrNotFound)
	}

	return nil
}

// SeedCategories inserts the given categories only when the table is empty.
// Returns the number of rows inserted.
func (db *DB) SeedCategories(ctx context.Context, seeds []models.CategoryCreate) (int, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, seed := range seeds {
		seed = seed.WithDefaults()
		if _, err := tx.Exec(ctx,
			`INSERT INTO categories (name, color, description, icon, resource_type)
			 VALUES ($1, $2, $3, $4, $5)`,
			seed.Name, seed.Color, seed.Description, seed.Icon, seed.ResourceType,
		); err != nil {
			return 0, fmt.Errorf("failed to seed category %q: %w", seed.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return len(seeds), nil
}
