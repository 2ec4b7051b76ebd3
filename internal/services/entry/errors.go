package entry

import (
	"fmt"

	"github.com/thenoetrevino/recall/internal/models"
)

// Entry-related errors. Both wrap a models error kind so callers can match
// either the specific error or the kind.
var (
	// ErrEmptyTitle is returned when a create request has an empty or blank title
	ErrEmptyTitle = fmt.Errorf("%w: entry title cannot be empty", models.ErrValidation)

	// ErrEntryNotFound is returned for IDs that cannot belong to any entry
	ErrEntryNotFound = fmt.Errorf("%w: invalid entry ID", models.ErrNotFound)
)
