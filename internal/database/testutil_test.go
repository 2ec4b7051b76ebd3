package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/recall/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every pooled connection would otherwise get its own empty database
	db.SetMaxOpenConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testDBPath returns a database file path inside a per-test temp dir
func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "recall-test.db")
}

// ============================================================================
// DATA CREATION HELPERS
// ============================================================================

// createTestEntry inserts an entry with a fixed stamp and returns it
func createTestEntry(t *testing.T, repo *Repository, title, notes string) *models.Entry {
	t.Helper()
	entry, err := repo.CreateEntry(context.Background(), title, "2024-03-05", "09:07 AM", notes)
	if err != nil {
		t.Fatalf("Failed to create entry %q: %v", title, err)
	}
	return entry
}

// countRows counts entries directly, bypassing the repository
func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	return count
}
