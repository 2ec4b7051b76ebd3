package models

import "errors"

// Error kinds shared by the repository, service, and presentation layers.
// Callers match them with errors.Is; concrete errors wrap one of these.
var (
	// ErrValidation indicates the input was rejected before anything was written
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates no entry exists with the requested ID
	ErrNotFound = errors.New("entry not found")

	// ErrStorageUnavailable indicates the backing database could not be opened or created
	ErrStorageUnavailable = errors.New("storage unavailable")
)
