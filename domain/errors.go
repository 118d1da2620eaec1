package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsentInput indicates a missing or non-positive identifier.
	// No I/O is attempted when it is returned.
	ErrAbsentInput = errors.New("absent input")

	// ErrNotFound indicates a toggle for a post that is no longer registered.
	ErrNotFound = errors.New("post not registered")

	// ErrCycleInFlight indicates a selection change while a refresh cycle runs.
	ErrCycleInFlight = errors.New("refresh cycle already in flight")
)

// FetchError reports a transport or decode failure for a single remote call.
type FetchError struct {
	Kind ResourceKind
	ID   int
	Err  error
}

func (e *FetchError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("fetch %s %d: %v", e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError reports a fetched record or collection that failed
// shape or ownership checks.
type ValidationError struct {
	Kind   ResourceKind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
}
