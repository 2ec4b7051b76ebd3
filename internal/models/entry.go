package models

import "time"

// Layouts used to stamp an entry at creation time.
// TimeLayout is a zero-padded 12-hour clock, e.g. "09:05 PM".
const (
	DateLayout = "2006-01-02"
	TimeLayout = "03:04 PM"
)

// Entry is a single reminder or note.
// Date and Time are set once when the entry is created and never recomputed.
type Entry struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

// GetID returns the entry ID (used by quiet CLI output)
func (e *Entry) GetID() int {
	return e.ID
}

// HasNotes reports whether the entry carries any non-empty notes
func (e *Entry) HasNotes() bool {
	return e.Notes != ""
}

// Stamp formats t into the date and time strings stored on an entry
func Stamp(t time.Time) (date, clock string) {
	return t.Format(DateLayout), t.Format(TimeLayout)
}
