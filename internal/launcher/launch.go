// Package launcher wires configuration, logging, and the database into the
// terminal UI and runs it until the user quits.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/recall/internal/app"
	"github.com/thenoetrevino/recall/internal/cli/styles"
	"github.com/thenoetrevino/recall/internal/config"
	"github.com/thenoetrevino/recall/internal/database"
	"github.com/thenoetrevino/recall/internal/logging"
	"github.com/thenoetrevino/recall/internal/tui"
	"github.com/thenoetrevino/recall/internal/tui/theme"
)

// Launch starts the TUI application. A non-empty dbPath overrides the
// configured database file.
func Launch(ctx context.Context, dbPath string) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, application, err := prepare(ctx, dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("starting tui", "database", cfg.Database.Path)

	p := tea.NewProgram(tui.New(ctx, application.EntryService, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

// prepare loads the configuration and opens the database before anything
// else touches its directory, so an unusable location is reported as
// models.ErrStorageUnavailable. File logging starts once the database is open.
func prepare(ctx context.Context, dbPath string) (*config.Config, *app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Log next to the database so the screen is never written over
	if err := logging.Init(filepath.Dir(cfg.Database.Path)); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	theme.Init(cfg.ColorScheme)
	styles.Init(cfg.ColorScheme)

	return cfg, app.New(db, app.WithLogger(slog.Default())), nil
}
