package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Entry list navigation
	AddEntryMode                  // Title + notes form
	ViewEntryMode                 // Read-only entry with rendered notes
	EditNotesMode                 // Notes editor for the selected entry
	DeleteConfirmMode             // Confirming entry deletion
	HelpMode                      // Displaying help screen
)

// String returns the label shown in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case AddEntryMode:
		return "ADD"
	case ViewEntryMode:
		return "VIEW"
	case EditNotesMode:
		return "EDIT"
	case DeleteConfirmMode:
		return "DELETE"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// UIState manages the user interface state: terminal dimensions, the current
// interaction mode, and the list scroll offset.
type UIState struct {
	width  int
	height int
	mode   Mode

	// scrollOffset is the index of the first visible list row
	scrollOffset int
}

// NewUIState creates a new UIState in NormalMode
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

func (s *UIState) SetWidth(w int)  { s.width = w }
func (s *UIState) SetHeight(h int) { s.height = h }

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// ScrollOffset returns the index of the first visible row
func (s *UIState) ScrollOffset() int { return s.scrollOffset }

// EnsureVisible adjusts the scroll offset so cursor is inside a window of
// visibleRows rows
func (s *UIState) EnsureVisible(cursor, visibleRows int) {
	if visibleRows <= 0 {
		s.scrollOffset = 0
		return
	}
	if cursor < s.scrollOffset {
		s.scrollOffset = cursor
	}
	if cursor >= s.scrollOffset+visibleRows {
		s.scrollOffset = cursor - visibleRows + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}
