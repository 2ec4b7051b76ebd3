// Package entry implements the entry store: the create, list, view, edit, and
// delete operations every front-end calls.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/recall/internal/models"
	"github.com/thenoetrevino/recall/internal/validator"
)

// Service defines all entry-related business operations
type Service interface {
	// Read operations
	GetAllEntries(ctx context.Context) ([]*models.Entry, error)
	GetEntryByID(ctx context.Context, id int) (*models.Entry, error)
	CountEntries(ctx context.Context) (int, error)

	// Write operations
	CreateEntry(ctx context.Context, req CreateEntryRequest) (*models.Entry, error)
	UpdateNotes(ctx context.Context, req UpdateNotesRequest) error
	DeleteEntry(ctx context.Context, id int) error
}

// CreateEntryRequest encapsulates data for creating an entry.
// Date and time are never taken from the caller.
type CreateEntryRequest struct {
	Title string `json:"title" validate:"required,notblank"`
	Notes string `json:"notes"`
}

// UpdateNotesRequest encapsulates data for replacing an entry's notes
type UpdateNotesRequest struct {
	ID    int    `json:"id"`
	Notes string `json:"notes"`
}

// repository defines the data access methods needed by the entry service
// This interface is private to the service layer
type repository interface {
	GetAllEntries(ctx context.Context) ([]*models.Entry, error)
	GetEntryByID(ctx context.Context, id int) (*models.Entry, error)
	CountEntries(ctx context.Context) (int, error)
	CreateEntry(ctx context.Context, title, date, clock, notes string) (*models.Entry, error)
	UpdateEntryNotes(ctx context.Context, id int, notes string) error
	DeleteEntry(ctx context.Context, id int) error
}

// Option configures optional service dependencies
type Option func(*service)

// WithClock sets the clock used to stamp new entries (defaults to time.Now)
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// service implements Service interface with private repository
type service struct {
	repo      repository
	validator *validator.Validator
	now       func() time.Time
	logger    *slog.Logger
}

// NewService creates a new entry service with private repository
func NewService(repo repository, opts ...Option) Service {
	s := &service{
		repo:      repo,
		validator: validator.New(),
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAllEntries retrieves every entry in ascending ID order
func (s *service) GetAllEntries(ctx context.Context) ([]*models.Entry, error) {
	return s.repo.GetAllEntries(ctx)
}

// GetEntryByID retrieves a specific entry
func (s *service) GetEntryByID(ctx context.Context, id int) (*models.Entry, error) {
	if id <= 0 {
		return nil, ErrEntryNotFound
	}
	return s.repo.GetEntryByID(ctx, id)
}

// CountEntries returns the number of stored entries
func (s *service) CountEntries(ctx context.Context) (int, error) {
	return s.repo.CountEntries(ctx)
}

// CreateEntry validates the request, stamps it with the local date and time, and stores it
func (s *service) CreateEntry(ctx context.Context, req CreateEntryRequest) (*models.Entry, error) {
	if err := s.validateCreateEntry(req); err != nil {
		return nil, err
	}

	date, clock := models.Stamp(s.now().Local())

	entry, err := s.repo.CreateEntry(ctx, req.Title, date, clock, req.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.logger.Info("entry created", "entry_id", entry.ID, "date", entry.Date, "time", entry.Time)
	return entry, nil
}

// UpdateNotes overwrites the notes of an existing entry
func (s *service) UpdateNotes(ctx context.Context, req UpdateNotesRequest) error {
	if req.ID <= 0 {
		return ErrEntryNotFound
	}

	if err := s.repo.UpdateEntryNotes(ctx, req.ID, req.Notes); err != nil {
		return fmt.Errorf("failed to update entry notes: %w", err)
	}

	s.logger.Info("entry notes updated", "entry_id", req.ID)
	return nil
}

// DeleteEntry permanently removes an entry
func (s *service) DeleteEntry(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrEntryNotFound
	}

	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.logger.Info("entry deleted", "entry_id", id)
	return nil
}

func (s *service) validateCreateEntry(req CreateEntryRequest) error {
	err := s.validator.Validate(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && verrs.HasField("title") {
		return fmt.Errorf("%w: %w", ErrEmptyTitle, verrs)
	}
	return fmt.Errorf("%w: %w", models.ErrValidation, err)
}
