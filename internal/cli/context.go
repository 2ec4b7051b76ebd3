package cli

import (
	"context"

	"github.com/thenoetrevino/recall/internal/app"
	"github.com/thenoetrevino/recall/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	dbPathKey contextKey = "dbPath"
)

// WithApp returns a context carrying an already built app.
// Commands run with it reuse the app instead of opening the database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithDatabasePath returns a context carrying a database path override
func WithDatabasePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, dbPathKey, path)
}

// DatabasePathFromContext returns the override set by WithDatabasePath
func DatabasePathFromContext(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(dbPathKey).(string)
	return path, ok && path != ""
}

// GetCLIFromContext returns a CLI for the command context, reusing an app
// injected with WithApp and falling back to NewCLI otherwise
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}

	return NewCLI(ctx)
}
