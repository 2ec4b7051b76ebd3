package database

import (
	"context"

	"github.com/thenoetrevino/recall/internal/models"
)

// EntryReader defines read operations for entries.
type EntryReader interface {
	GetAllEntries(ctx context.Context) ([]*models.Entry, error)
	GetEntryByID(ctx context.Context, id int) (*models.Entry, error)
	CountEntries(ctx context.Context) (int, error)
}

// EntryWriter defines write operations for entries.
type EntryWriter interface {
	CreateEntry(ctx context.Context, title, date, clock, notes string) (*models.Entry, error)
	UpdateEntryNotes(ctx context.Context, id int, notes string) error
	DeleteEntry(ctx context.Context, id int) error
}

// EntryRepository combines all entry-related operations.
type EntryRepository interface {
	EntryReader
	EntryWriter
}
