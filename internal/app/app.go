package app

import (
	"database/sql"

	"github.com/thenoetrevino/recall/internal/database"
	entryservice "github.com/thenoetrevino/recall/internal/services/entry"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	db *sql.DB

	// Service layer (business logic)
	EntryService entryservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
// The App takes ownership of db and releases it in Close.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)

	return &App{
		db: db,
		EntryService: entryservice.NewService(repo,
			entryservice.WithLogger(cfg.logger),
			entryservice.WithClock(cfg.clock),
		),
	}
}

// Close releases the database connection
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
