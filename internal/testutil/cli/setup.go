package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/recall/internal/app"
	"github.com/thenoetrevino/recall/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithLogger(testutil.DiscardLogger()))

	return db, appInstance
}

// CreateTestEntry wraps testutil.CreateTestEntry for CLI tests
func CreateTestEntry(t *testing.T, db *sql.DB, title, notes string) int {
	t.Helper()
	return testutil.CreateTestEntry(t, db, title, notes)
}
