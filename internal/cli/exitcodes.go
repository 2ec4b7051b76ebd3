package cli

import (
	"errors"

	"github.com/thenoetrevino/recall/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or unparseable arguments.
	ExitUsage = 2

	// ExitNotFound indicates the requested entry does not exist.
	ExitNotFound = 3

	// ExitValidation indicates a validation error, such as a blank title.
	ExitValidation = 5
)

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code printed in JSON error output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return "ENTRY_NOT_FOUND"
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR"
	case errors.Is(err, models.ErrStorageUnavailable):
		return "STORAGE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// reportedError wraps an error that has already been shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already printed so main only sets the exit code
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was marked by Reported
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
