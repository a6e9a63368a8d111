package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no movie matches the requested id.
	ErrNotFound = errors.New("movie not found")
	// ErrConflict is returned when a movie with the same title already exists.
	ErrConflict = errors.New("movie already exists")
)

// ValidationError reports a rejected field value. The stored row is left
// untouched when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
