package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/recall/internal/database"
	entryservice "github.com/thenoetrevino/recall/internal/services/entry"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	return New(db, opts...)
}

func TestNew(t *testing.T) {
	app := newTestApp(t)
	defer func() { _ = app.Close() }()

	require.NotNil(t, app)
	assert.NotNil(t, app.EntryService)
}

func TestNew_OptionsReachEntryService(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	fixed := time.Date(2023, time.December, 31, 23, 59, 0, 0, time.Local)

	app := newTestApp(t, WithLogger(logger), WithClock(func() time.Time { return fixed }))
	defer func() { _ = app.Close() }()

	entry, err := app.EntryService.CreateEntry(context.Background(), entryservice.CreateEntryRequest{Title: "New year"})
	require.NoError(t, err)

	assert.Equal(t, "2023-12-31", entry.Date)
	assert.Equal(t, "11:59 PM", entry.Time)
	assert.Contains(t, logs.String(), "entry created")
	assert.Contains(t, logs.String(), "entry_id=1")
}

func TestClose(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.Close())

	_, err := app.EntryService.GetAllEntries(context.Background())
	assert.Error(t, err, "store calls must fail once the connection is released")
}

func TestClose_NilDB(t *testing.T) {
	app := &App{}
	assert.NoError(t, app.Close())
}
