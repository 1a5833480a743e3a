package errors

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the domain packages. Callers wrap these with
// fmt.Errorf("...: %w", ErrX) to add context; Map turns them into statuses.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("not a participant")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrQuotaExceeded and ErrRaceLost are conflicts with their own status codes.
	ErrQuotaExceeded = fmt.Errorf("%w: daily view quota exceeded", ErrConflict)
	ErrRaceLost      = fmt.Errorf("%w: concurrent write won the race", ErrConflict)
)

// Invalid wraps ErrInvalidInput with a field-level message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Is re-exports errors.Is so importers of this package don't need both.
func Is(err, target error) bool { return errors.Is(err, target) }
