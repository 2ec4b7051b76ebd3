package testutil

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/recall/internal/database"
	"github.com/thenoetrevino/recall/internal/models"
)

// TestClockDate and TestClockTime are the stamps CreateTestEntry writes
const (
	TestClockDate = "2024-03-05"
	TestClockTime = "09:07 AM"
)

// SetupTestDB creates an in-memory database with the full schema.
// The handle is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestEntry inserts an entry with fixed stamps and returns its ID.
// It bypasses the service so tests can seed rows without a clock.
func CreateTestEntry(t *testing.T, db *sql.DB, title, notes string) int {
	t.Helper()

	entry, err := database.NewRepository(db).CreateEntry(context.Background(), title, TestClockDate, TestClockTime, notes)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}
	return entry.ID
}

// GetTestEntry reads an entry straight from the table
func GetTestEntry(t *testing.T, db *sql.DB, id int) *models.Entry {
	t.Helper()

	entry, err := database.NewRepository(db).GetEntryByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to read test entry %d: %v", id, err)
	}
	return entry
}

// CountTestEntries returns the number of rows in the entries table
func CountTestEntries(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	return count
}

// DiscardLogger returns a logger that drops every record
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
