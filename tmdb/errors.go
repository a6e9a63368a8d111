package tmdb

import (
	"errors"
	"fmt"
)

// ErrUpstream matches every *UpstreamError via errors.Is.
var ErrUpstream = errors.New("tmdb: upstream error")

// UpstreamError describes a failed search call. Status is the HTTP status
// code when the provider answered, zero otherwise.
type UpstreamError struct {
	Op     string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("tmdb %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("tmdb %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }
