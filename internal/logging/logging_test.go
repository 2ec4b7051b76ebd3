package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	t.Helper()
	prevSlog := slog.Default()
	prevOut := log.Writer()
	prevFlags := log.Flags()
	t.Cleanup(func() {
		slog.SetDefault(prevSlog)
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
}

func TestInit_WritesToLogFile(t *testing.T) {
	restoreDefaults(t)
	dir := t.TempDir()

	require.NoError(t, Init(dir))

	slog.Debug("debug line", "entry_id", 7)
	log.Print("std log line")

	data, err := os.ReadFile(filepath.Join(dir, "logs", FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
	assert.Contains(t, string(data), "entry_id=7")
	assert.Contains(t, string(data), "std log line")
}

func TestInit_AppendsAcrossRuns(t *testing.T) {
	restoreDefaults(t)
	dir := t.TempDir()

	require.NoError(t, Init(dir))
	slog.Info("first run")
	require.NoError(t, Init(dir))
	slog.Info("second run")

	data, err := os.ReadFile(filepath.Join(dir, "logs", FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestInit_UnwritableDir(t *testing.T) {
	restoreDefaults(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	assert.Error(t, Init(blocker))
}
