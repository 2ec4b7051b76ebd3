package state

import "github.com/thenoetrevino/recall/internal/models"

// ListState holds the entries shown in the list and the selected row
type ListState struct {
	entries []*models.Entry
	cursor  int
}

// NewListState creates an empty list
func NewListState() *ListState {
	return &ListState{}
}

// Entries returns the loaded entries in display order
func (s *ListState) Entries() []*models.Entry { return s.entries }

// Len returns the number of loaded entries
func (s *ListState) Len() int { return len(s.entries) }

// Cursor returns the selected row index
func (s *ListState) Cursor() int { return s.cursor }

// SetEntries replaces the list, keeping the cursor in range
func (s *ListState) SetEntries(entries []*models.Entry) {
	s.entries = entries
	s.clamp()
}

// Selected returns the entry under the cursor, or nil when the list is empty
func (s *ListState) Selected() *models.Entry {
	if s.cursor < 0 || s.cursor >= len(s.entries) {
		return nil
	}
	return s.entries[s.cursor]
}

// MoveUp moves the cursor one row up
func (s *ListState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor one row down
func (s *ListState) MoveDown() {
	if s.cursor < len(s.entries)-1 {
		s.cursor++
	}
}

// First selects the first row
func (s *ListState) First() { s.cursor = 0 }

// Last selects the last row
func (s *ListState) Last() {
	s.cursor = max(len(s.entries)-1, 0)
}

// SelectID moves the cursor to the entry with id, if present
func (s *ListState) SelectID(id int) bool {
	for i, entry := range s.entries {
		if entry.ID == id {
			s.cursor = i
			return true
		}
	}
	return false
}

func (s *ListState) clamp() {
	if s.cursor >= len(s.entries) {
		s.cursor = len(s.entries) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
