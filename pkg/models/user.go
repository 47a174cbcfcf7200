package models

import (
	"time"

	"github.com/google/uuid"
)

// User owns an API key for the gateway. The catalog itself is single-tenant,
// so users only gate transport access.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	APIKey    string    `db:"api_key" json:"api_key"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// UserCreate is the registration payload
type UserCreate struct {
	Email string `json:"email" binding:"required,email"`
}
