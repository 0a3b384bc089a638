// Package recurrence defines strategies, options and error definitions
// for the recursive-computation routines.
package recurrence

import (
	"errors"
	"fmt"
)

// Sentinel errors for recurrence execution.
var (
	// ErrNegativeIndex is returned when a term index is negative.
	// It fires before any recursion begins.
	ErrNegativeIndex = errors.New("recurrence: index must be non-negative")

	// ErrBadInput is returned for an unknown Strategy or a nested value
	// containing a kind that has no meaningful element count.
	ErrBadInput = errors.New("recurrence: invalid input")
)

// Strategy controls how a numeric recurrence is evaluated.
//
//   - Iterative — bottom-up loop carrying the last two terms.
//     Time O(n), call stack O(1). The default; safe at any index.
//
//   - Memoized — top-down recursion with a memo map allocated per call.
//     Time O(n), call stack O(n). The textbook formulation; use Iterative
//     when n is large enough for stack depth to matter.
type Strategy int

const (
	// Iterative strategy: bottom-up evaluation, constant stack. The default.
	Iterative Strategy = iota

	// Memoized strategy: top-down recursion with per-call memoization.
	Memoized
)

// Option configures recurrence evaluation via functional arguments.
// An invalid Option is recorded internally and surfaced as ErrBadInput
// when the computation is invoked.
type Option func(*Options)

// Options holds parameters customizing recurrence evaluation.
type Options struct {
	// Strategy selects the evaluation scheme (Iterative or Memoized).
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Iterative strategy selected.
func DefaultOptions() Options {
	return Options{Strategy: Iterative, err: nil}
}

// WithStrategy selects the evaluation strategy.
// An unknown value is surfaced as ErrBadInput on invocation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Iterative, Memoized:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy (%d)", ErrBadInput, s)
		}
	}
}
