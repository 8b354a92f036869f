package engine

import "errors"

// Every public operation fails with a (nil, error) pair built around
// one of these sentinels; callers use errors.Is to distinguish them.
var (
	// ErrInvalidInput marks a bad handle, a missing coordinate, or an
	// object/port of the wrong shape for the requested operation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a failed ID lookup.
	ErrNotFound = errors.New("not found")
	// ErrInvariantViolation marks a caller violating a documented
	// pre-condition (e.g. drawConnector given a segment that touches
	// another mid-span without pre-splitting).
	ErrInvariantViolation = errors.New("invariant violation")
)
