package db

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func TestSchemaStatements(t *testing.T) {
	stmts := schemaStatements(schema)
	if len(stmts) != 5 {
		t.Fatalf("Expected 5 statements, got %d", len(stmts))
	}
	for _, stmt := range stmts {
		if strings.HasPrefix(stmt, "--") {
			t.Errorf("Expected comments to be stripped, got %q", stmt)
		}
	}
	if !strings.Contains(stmts[2], "CREATE TABLE IF NOT EXISTS resources") {
		t.Errorf("Expected third statement to create resources, got %q", stmts[2])
	}
	if strings.Contains(stmts[2], "REFERENCES") {
		t.Error("Expected resources.category_id to carry no foreign key")
	}
}

func TestUpdateBuilder(t *testing.T) {
	id := uuid.New()
	b := newUpdate("resources", id)
	b.touch("updated_at", "NOW()")
	b.set("title", "New")
	b.set("tags", []string{"a"})

	got := b.sql("id")
	want := "UPDATE resources SET updated_at = NOW(), title = $2, tags = $3 WHERE id = $1 RETURNING id"
	if got != want {
		t.Errorf("sql() =\n%q\nwant\n%q", got, want)
	}
	if len(b.args) != 3 || b.args[0] != id {
		t.Errorf("Expected id as first of 3 args, got %v", b.args)
	}
}

func TestUpdateBuilderEmpty(t *testing.T) {
	b := newUpdate("categories", uuid.New())
	if !b.empty() {
		t.Error("Expected new builder to be empty")
	}
	b.set("name", "x")
	if b.empty() {
		t.Error("Expected builder with a set to be non-empty")
	}
}

func TestNotFound(t *testing.T) {
	err := notFound(pgx.ErrNoRows, "resource")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err.Error() != "resource not found" {
		t.Errorf("Unexpected message %q", err.Error())
	}

	other := fmt.Errorf("boom")
	if notFound(other, "resource") != other {
		t.Error("Expected other errors to pass through")
	}
}
