package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/johnwards/propcat/internal/database"
	"github.com/johnwards/propcat/internal/testhelpers"
)

func TestOpenPragmas(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	if err := db.Ping(); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	// In-memory databases report "memory" instead of "wal".
	if journalMode != "wal" && journalMode != "memory" {
		t.Errorf("journal_mode = %q, want wal or memory", journalMode)
	}

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

func TestOpenFileUsesWAL(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %q, want wal", journalMode)
	}
}

func TestVersion(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	v, err := database.Version(ctx, db)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != 2 {
		t.Errorf("version = %d, want 2", v)
	}
}

func TestVersionBeforeMigrateFails(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	if _, err := database.Version(context.Background(), db); err == nil {
		t.Error("expected error without schema_migrations table")
	}
}
