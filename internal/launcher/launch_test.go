package launcher

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/recall/internal/config"
	"github.com/thenoetrevino/recall/internal/logging"
	"github.com/thenoetrevino/recall/internal/models"
	entryservice "github.com/thenoetrevino/recall/internal/services/entry"
)

// isolate keeps config lookups and the global loggers local to the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvDatabasePath, "")
	t.Setenv(config.EnvThemeFile, "")

	prevSlog := slog.Default()
	prevOut := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevSlog)
		log.SetOutput(prevOut)
	})
}

func TestPrepare(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "data")
	dbPath := filepath.Join(dir, "recall.db")

	cfg, application, err := prepare(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() { _ = application.Close() }()

	assert.Equal(t, dbPath, cfg.Database.Path)
	assert.FileExists(t, dbPath)
	assert.FileExists(t, filepath.Join(dir, "logs", logging.FileName))

	entry, err := application.EntryService.CreateEntry(context.Background(), entryservice.CreateEntryRequest{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, 1, entry.ID)
}

func TestPrepare_UnusableLocationIsStorageUnavailable(t *testing.T) {
	isolate(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := prepare(context.Background(), filepath.Join(blocker, "recall.db"))

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
	assert.NoDirExists(t, filepath.Join(blocker, "logs"))
}
