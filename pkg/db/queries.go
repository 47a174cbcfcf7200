package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// updateBuilder assembles a dynamic UPDATE statement from the provided fields.
// $1 is always the row id.
type updateBuilder struct {
	table string
	sets  []string
	args  []interface{}
}

func newUpdate(table string, id uuid.UUID) *updateBuilder {
	return &updateBuilder{table: table, args: []interface{}{id}}
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// touch adds an expression assignment that takes no argument
func (b *updateBuilder) touch(column, expr string) {
	b.sets = append(b.sets, fmt.Sprintf("%s = %s", column, expr))
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

func (b *updateBuilder) sql(returning string) string {
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s",
		b.table, strings.Join(b.sets, ", "), returning)
}

// notFound maps pgx's no-rows error onto ErrNotFound
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}

// GetUserByAPIKey retrieves a user by their API key
func (db *DB) GetUserByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	var user models.User
	err := db.Pool.QueryRow(ctx,
		`SELECT id, email, api_key, created_at, updated_at
		 FROM users WHERE api_key = $1`,
		apiKey,
	).Scan(
		&user.ID,
		&user.Email,
		&user.APIKey,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateUser creates a new user
func (db *DB) CreateUser(ctx context.Context, email, apiKey string) (*models.User, error) {
	var user models.User
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO users (email, api_key)
		 VALUES ($1, $2)
		 RETURNING id, email, api_key, created_at, updated_at`,
		email, apiKey,
	).Scan(
		&user.ID,
		&user.Email,
		&user.APIKey,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}
