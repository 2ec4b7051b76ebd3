package entry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/recall/internal/models"
	"github.com/thenoetrevino/recall/internal/testutil"
)

// mockRepository is a testify mock of the private repository interface
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetAllEntries(ctx context.Context) ([]*models.Entry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]*models.Entry)
	return entries, args.Error(1)
}

func (m *mockRepository) GetEntryByID(ctx context.Context, id int) (*models.Entry, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*models.Entry)
	return entry, args.Error(1)
}

func (m *mockRepository) CountEntries(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockRepository) CreateEntry(ctx context.Context, title, date, clock, notes string) (*models.Entry, error) {
	args := m.Called(ctx, title, date, clock, notes)
	entry, _ := args.Get(0).(*models.Entry)
	return entry, args.Error(1)
}

func (m *mockRepository) UpdateEntryNotes(ctx context.Context, id int, notes string) error {
	return m.Called(ctx, id, notes).Error(0)
}

func (m *mockRepository) DeleteEntry(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func newMockedService(repo *mockRepository) Service {
	fixed := time.Date(2025, time.July, 4, 16, 5, 0, 0, time.Local)
	return NewService(repo,
		WithClock(func() time.Time { return fixed }),
		WithLogger(testutil.DiscardLogger()),
	)
}

func TestCreateEntry_PassesStampToRepository(t *testing.T) {
	repo := &mockRepository{}
	svc := newMockedService(repo)
	ctx := context.Background()

	stored := &models.Entry{ID: 3, Title: "Call mom", Date: "2025-07-04", Time: "04:05 PM"}
	repo.On("CreateEntry", ctx, "Call mom", "2025-07-04", "04:05 PM", "").Return(stored, nil).Once()

	entry, err := svc.CreateEntry(ctx, CreateEntryRequest{Title: "Call mom"})
	require.NoError(t, err)
	assert.Same(t, stored, entry)
	repo.AssertExpectations(t)
}

func TestCreateEntry_ValidationSkipsRepository(t *testing.T) {
	repo := &mockRepository{}
	svc := newMockedService(repo)

	_, err := svc.CreateEntry(context.Background(), CreateEntryRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrEmptyTitle)
	repo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RepositoryErrorsAreWrapped(t *testing.T) {
	storageErr := errors.New("disk I/O error")
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("CreateEntry", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, storageErr)
	repo.On("UpdateEntryNotes", ctx, 1, "x").Return(storageErr)
	repo.On("DeleteEntry", ctx, 1).Return(storageErr)
	svc := newMockedService(repo)

	_, err := svc.CreateEntry(ctx, CreateEntryRequest{Title: "t"})
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, models.ErrValidation)

	err = svc.UpdateNotes(ctx, UpdateNotesRequest{ID: 1, Notes: "x"})
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, models.ErrNotFound)

	err = svc.DeleteEntry(ctx, 1)
	assert.ErrorIs(t, err, storageErr)
}

func TestService_NonPositiveIDsNeverReachRepository(t *testing.T) {
	repo := &mockRepository{}
	svc := newMockedService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteEntry(ctx, 0), models.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateNotes(ctx, UpdateNotesRequest{ID: -1}), models.ErrNotFound)
	_, err := svc.GetEntryByID(ctx, 0)
	assert.ErrorIs(t, err, models.ErrNotFound)

	repo.AssertExpectations(t)
	assert.Empty(t, repo.Calls)
}
