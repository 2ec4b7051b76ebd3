// Package cli holds the shared plumbing for recall's cobra commands: the
// application handle, output modes, exit codes, and styles.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/recall/internal/app"
	"github.com/thenoetrevino/recall/internal/cli/styles"
	"github.com/thenoetrevino/recall/internal/config"
	"github.com/thenoetrevino/recall/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when App was injected by the caller, who then closes it
	owned bool
}

// NewCLI loads the configuration, opens the database, and builds the app.
// The database path comes from the context (see WithDatabasePath) when set,
// otherwise from the config.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	path := cfg.Database.Path
	if override, ok := DatabasePathFromContext(ctx); ok {
		path = override
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(db),
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned || c.App == nil {
		return nil
	}
	return c.App.Close()
}
