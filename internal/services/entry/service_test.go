package entry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/recall/internal/database"
	"github.com/thenoetrevino/recall/internal/models"
	"github.com/thenoetrevino/recall/internal/testutil"
	"github.com/thenoetrevino/recall/internal/validator"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// fakeClock is a manually advanced clock for deterministic stamps
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 5, 9, 7, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// setupService wires a service to a fresh in-memory database
func setupService(t *testing.T) (Service, *fakeClock) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	clock := newFakeClock()
	svc := NewService(database.NewRepository(db), WithClock(clock.Now), WithLogger(testutil.DiscardLogger()))
	return svc, clock
}

func mustCreate(t *testing.T, svc Service, title, notes string) *models.Entry {
	t.Helper()
	entry, err := svc.CreateEntry(context.Background(), CreateEntryRequest{Title: title, Notes: notes})
	require.NoError(t, err)
	return entry
}

func mustCount(t *testing.T, svc Service) int {
	t.Helper()
	count, err := svc.CountEntries(context.Background())
	require.NoError(t, err)
	return count
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateEntry_StampsDateAndTime(t *testing.T) {
	svc, clock := setupService(t)

	entry := mustCreate(t, svc, "Buy milk", "2%")

	wantDate, wantTime := models.Stamp(clock.Now())
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, "Buy milk", entry.Title)
	assert.Equal(t, "2%", entry.Notes)
	assert.Equal(t, wantDate, entry.Date)
	assert.Equal(t, wantTime, entry.Time)
	assert.Equal(t, "2024-03-05", entry.Date)
	assert.Equal(t, "09:07 AM", entry.Time)
}

func TestCreateEntry_IDsStrictlyIncrease(t *testing.T) {
	svc, _ := setupService(t)

	prev := 0
	for _, title := range []string{"a", "b", "c", "d"} {
		entry := mustCreate(t, svc, title, "")
		assert.Greater(t, entry.ID, prev, "id for %q should exceed every earlier id", title)
		prev = entry.ID
	}
}

func TestCreateEntry_BlankTitleRejected(t *testing.T) {
	svc, _ := setupService(t)
	mustCreate(t, svc, "existing", "")

	for _, title := range []string{"", " ", "   ", "\t", "\n  \t"} {
		t.Run("title="+title, func(t *testing.T) {
			entry, err := svc.CreateEntry(context.Background(), CreateEntryRequest{Title: title, Notes: "ignored"})

			require.Error(t, err)
			assert.Nil(t, entry)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.ErrorIs(t, err, ErrEmptyTitle)

			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs), "validation details should be attached")

			assert.Equal(t, 1, mustCount(t, svc), "no row may be written for a rejected create")
		})
	}
}

func TestCreateEntry_NotesOptional(t *testing.T) {
	svc, _ := setupService(t)

	entry := mustCreate(t, svc, "No notes", "")

	assert.Empty(t, entry.Notes)
	assert.False(t, entry.HasNotes())
}

// ============================================================================
// LIST
// ============================================================================

func TestGetAllEntries_ReturnsCreatedRowsWithCreationStamps(t *testing.T) {
	svc, clock := setupService(t)

	var created []*models.Entry
	for i, title := range []string{"morning", "noon", "evening"} {
		if i > 0 {
			clock.Advance(5*time.Hour + 13*time.Minute)
		}
		created = append(created, mustCreate(t, svc, title, "n"+title))
	}

	// later clock movement must not leak into stored stamps
	clock.Advance(48 * time.Hour)

	entries, err := svc.GetAllEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, len(created))

	for i, entry := range entries {
		assert.Equal(t, *created[i], *entry)
		if i > 0 {
			assert.Greater(t, entry.ID, entries[i-1].ID)
		}
	}
	assert.Equal(t, "09:07 AM", entries[0].Time)
	assert.Equal(t, "02:20 PM", entries[1].Time)
	assert.Equal(t, "07:33 PM", entries[2].Time)
}

func TestGetAllEntries_FreshOnEveryCall(t *testing.T) {
	svc, _ := setupService(t)

	first, err := svc.GetAllEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, first)

	mustCreate(t, svc, "new", "")

	second, err := svc.GetAllEntries(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

// ============================================================================
// VIEW
// ============================================================================

func TestGetEntryByID(t *testing.T) {
	svc, _ := setupService(t)
	created := mustCreate(t, svc, "Dentist", "Tuesday 3pm")

	got, err := svc.GetEntryByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	for _, id := range []int{0, -1, created.ID + 1} {
		_, err := svc.GetEntryByID(context.Background(), id)
		assert.ErrorIs(t, err, models.ErrNotFound, "id %d", id)
	}
}

// ============================================================================
// UPDATE NOTES
// ============================================================================

func TestUpdateNotes_OnlyNotesChange(t *testing.T) {
	svc, clock := setupService(t)
	created := mustCreate(t, svc, "Buy milk", "2%")
	clock.Advance(26 * time.Hour)

	require.NoError(t, svc.UpdateNotes(context.Background(), UpdateNotesRequest{ID: created.ID, Notes: "x"}))

	entries, err := svc.GetAllEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].Notes)
	assert.Equal(t, created.Title, entries[0].Title)
	assert.Equal(t, created.Date, entries[0].Date)
	assert.Equal(t, created.Time, entries[0].Time)
}

func TestUpdateNotes_RepeatedAndCleared(t *testing.T) {
	svc, _ := setupService(t)
	created := mustCreate(t, svc, "Buy milk", "2%")

	for _, notes := range []string{"one", "two", ""} {
		require.NoError(t, svc.UpdateNotes(context.Background(), UpdateNotesRequest{ID: created.ID, Notes: notes}))
		got, err := svc.GetEntryByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, notes, got.Notes)
	}
}

func TestUpdateNotes_NotFoundLeavesTableUnchanged(t *testing.T) {
	svc, _ := setupService(t)
	created := mustCreate(t, svc, "Buy milk", "2%")

	for _, id := range []int{0, -3, created.ID + 10} {
		err := svc.UpdateNotes(context.Background(), UpdateNotesRequest{ID: id, Notes: "x"})
		assert.ErrorIs(t, err, models.ErrNotFound, "id %d", id)
	}

	got, err := svc.GetEntryByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

// ============================================================================
// DELETE
// ============================================================================

func TestDeleteEntry_RemovesExactlyOne(t *testing.T) {
	svc, _ := setupService(t)
	a := mustCreate(t, svc, "a", "")
	b := mustCreate(t, svc, "b", "")
	c := mustCreate(t, svc, "c", "")

	require.NoError(t, svc.DeleteEntry(context.Background(), b.ID))

	entries, err := svc.GetAllEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, a.ID, entries[0].ID)
	assert.Equal(t, c.ID, entries[1].ID)

	next := mustCreate(t, svc, "d", "")
	assert.Greater(t, next.ID, c.ID, "deleted ids must never be reassigned")
}

func TestDeleteEntry_NotFoundLeavesTableUnchanged(t *testing.T) {
	svc, _ := setupService(t)
	mustCreate(t, svc, "keep", "")

	for _, id := range []int{0, -1, 99} {
		err := svc.DeleteEntry(context.Background(), id)
		assert.ErrorIs(t, err, models.ErrNotFound, "id %d", id)
	}
	assert.Equal(t, 1, mustCount(t, svc))
}

// ============================================================================
// END-TO-END SCENARIO
// ============================================================================

func TestEntryLifecycleScenario(t *testing.T) {
	svc, clock := setupService(t)
	ctx := context.Background()
	today, now := models.Stamp(clock.Now())

	entry, err := svc.CreateEntry(ctx, CreateEntryRequest{Title: "Buy milk", Notes: "2%"})
	require.NoError(t, err)
	assert.Equal(t, models.Entry{ID: 1, Title: "Buy milk", Notes: "2%", Date: today, Time: now}, *entry)

	_, err = svc.CreateEntry(ctx, CreateEntryRequest{Title: "", Notes: ""})
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, 1, mustCount(t, svc))

	require.NoError(t, svc.UpdateNotes(ctx, UpdateNotesRequest{ID: 1, Notes: "whole milk"}))
	got, err := svc.GetEntryByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "whole milk", got.Notes)

	require.NoError(t, svc.DeleteEntry(ctx, 1))
	assert.Equal(t, 0, mustCount(t, svc))

	err = svc.DeleteEntry(ctx, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
