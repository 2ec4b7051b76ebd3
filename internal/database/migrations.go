package database

import (
	"context"
	"database/sql"
)

// entriesSchema is the only table recall owns.
// AUTOINCREMENT keeps SQLite from handing out the ID of a deleted last row again.
const entriesSchema = `
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL CHECK (length(trim(title)) > 0),
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		notes TEXT
	)
`

// runMigrations creates the database schema if it is missing
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, entriesSchema)
	return err
}
