// Package testhelpers provides shared fixtures for package tests.
package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/johnwards/propcat/internal/database"
)

// NewTestDB returns an in-memory SQLite database configured the same way as
// production. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewMigratedDB returns a NewTestDB with the catalog schema applied.
func NewMigratedDB(t *testing.T) *sql.DB {
	t.Helper()

	db := NewTestDB(t)
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
