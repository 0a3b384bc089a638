// Package search provides error definitions shared by the search routines.
package search

import "errors"

// Sentinel errors for search execution.
var (
	// ErrNotFound is returned when no element matches the target.
	// It is a legitimate outcome, distinguishable from real failures
	// via errors.Is, and never doubles as a valid position.
	ErrNotFound = errors.New("search: target not found")

	// ErrBadInput is returned when a required predicate or comparator is nil.
	ErrBadInput = errors.New("search: invalid input")
)

// NoPosition is the position value accompanying any non-nil error.
// It is deliberately outside the valid index range.
const NoPosition = -1
