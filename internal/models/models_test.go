package models

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Defined(t *testing.T) {
	if ErrValidation == nil {
		t.Error("ErrValidation should not be nil")
	}
	if ErrNotFound == nil {
		t.Error("ErrNotFound should not be nil")
	}
	if ErrStorageUnavailable == nil {
		t.Error("ErrStorageUnavailable should not be nil")
	}
}

func TestErrors_Distinct(t *testing.T) {
	if errors.Is(ErrValidation, ErrNotFound) {
		t.Error("ErrValidation should not match ErrNotFound")
	}
	if errors.Is(ErrNotFound, ErrStorageUnavailable) {
		t.Error("ErrNotFound should not match ErrStorageUnavailable")
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("entry 7: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped error should match ErrNotFound")
	}
}

// ============================================================================
// Entry Tests
// ============================================================================

func TestStamp(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		wantDate string
		wantTime string
	}{
		{
			name:     "morning is zero padded",
			at:       time.Date(2024, time.March, 5, 9, 7, 0, 0, time.Local),
			wantDate: "2024-03-05",
			wantTime: "09:07 AM",
		},
		{
			name:     "afternoon uses PM",
			at:       time.Date(2024, time.December, 31, 21, 45, 59, 0, time.Local),
			wantDate: "2024-12-31",
			wantTime: "09:45 PM",
		},
		{
			name:     "midnight is twelve AM",
			at:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local),
			wantDate: "2025-01-01",
			wantTime: "12:00 AM",
		},
		{
			name:     "noon is twelve PM",
			at:       time.Date(2025, time.June, 15, 12, 30, 0, 0, time.Local),
			wantDate: "2025-06-15",
			wantTime: "12:30 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, clock := Stamp(tt.at)
			if date != tt.wantDate {
				t.Errorf("date = %q, want %q", date, tt.wantDate)
			}
			if clock != tt.wantTime {
				t.Errorf("time = %q, want %q", clock, tt.wantTime)
			}
		})
	}
}

func TestEntry_GetID(t *testing.T) {
	e := &Entry{ID: 42}
	if e.GetID() != 42 {
		t.Errorf("GetID() = %d, want 42", e.GetID())
	}
}

func TestEntry_HasNotes(t *testing.T) {
	if (&Entry{}).HasNotes() {
		t.Error("empty entry should not have notes")
	}
	if !(&Entry{Notes: "2%"}).HasNotes() {
		t.Error("entry with notes should report HasNotes")
	}
}
