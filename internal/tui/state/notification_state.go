package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the message shown in the status bar.
// Only the latest notification is kept.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Set replaces the current notification
func (s *NotificationState) Set(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Info, Warn, and Error are shorthands for Set
func (s *NotificationState) Info(message string)  { s.Set(LevelInfo, message) }
func (s *NotificationState) Warn(message string)  { s.Set(LevelWarning, message) }
func (s *NotificationState) Error(message string) { s.Set(LevelError, message) }

// Clear removes the notification
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the notification, if any
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}
