package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/recall/internal/models"
)

// EntryRepo handles all entry-related database operations.
// Pure data access: no validation, no clock, no business rules.
type EntryRepo struct {
	db *sql.DB
}

const selectEntryColumns = `SELECT id, title, date, time, notes FROM entries`

// CreateEntry inserts a row and returns it as stored
func (r *EntryRepo) CreateEntry(ctx context.Context, title, date, clock, notes string) (*models.Entry, error) {
	var entry *models.Entry
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO entries (title, date, time, notes) VALUES (?, ?, ?, ?)`,
			title, date, clock, notes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry '%s': %w", title, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get entry ID after insert: %w", err)
		}

		entry, err = scanEntry(tx.QueryRowContext(ctx, selectEntryColumns+` WHERE id = ?`, id))
		if err != nil {
			return fmt.Errorf("failed to read back entry %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntryByID retrieves an entry by its ID
func (r *EntryRepo) GetEntryByID(ctx context.Context, id int) (*models.Entry, error) {
	entry, err := scanEntry(r.db.QueryRowContext(ctx, selectEntryColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %d: %w", id, err)
	}
	return entry, nil
}

// GetAllEntries retrieves all entries in insertion order
func (r *EntryRepo) GetAllEntries(ctx context.Context) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, selectEntryColumns+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all entries: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	entries := make([]*models.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}
	return entries, nil
}

// CountEntries returns the number of stored entries
func (r *EntryRepo) CountEntries(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// UpdateEntryNotes overwrites the notes of an entry, leaving title, date and time untouched
func (r *EntryRepo) UpdateEntryNotes(ctx context.Context, id int, notes string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE entries SET notes = ? WHERE id = ?`, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update notes for entry %d: %w", id, err)
	}
	return requireOneRow(result, id)
}

// DeleteEntry permanently removes an entry
func (r *EntryRepo) DeleteEntry(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	return requireOneRow(result, id)
}

// requireOneRow turns a zero-row write into models.ErrNotFound
func requireOneRow(result sql.Result, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for entry %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func scanEntry(row scanner) (*models.Entry, error) {
	entry := &models.Entry{}
	var notes sql.NullString
	if err := row.Scan(&entry.ID, &entry.Title, &entry.Date, &entry.Time, &notes); err != nil {
		return nil, err
	}
	entry.Notes = NullStringToString(notes)
	return entry, nil
}
