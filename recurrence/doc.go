// Package recurrence computes values defined by self-referential relations:
// numeric recurrences over an integer index, and structural recursion over
// arbitrarily nested values.
//
// What
//
//   - Fibonacci: the nth term of F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2), as a
//     *big.Int — unbounded precision, so no index overflows. Two strategies:
//   - Iterative (default): O(n) time, O(1) call stack. Safe at any n.
//   - Memoized: top-down recursion with a per-call memo map; O(n) time but
//     O(n) call stack — the classic formulation, kept for contrast. For very
//     large n prefer Iterative.
//   - Size:  leaf count of a nested value — slices and arrays recurse, every
//     other value counts as one leaf. Size([1,[2,3],[4,[5]]]) == 5.
//   - Depth: nesting depth of the same shape — a leaf is 0, a flat slice is 1.
//
// Purity
//
//	Every call is independent and referentially transparent: the memoized
//	strategy allocates its memo per call and discards it on return, so nothing
//	is shared between invocations.
//
// Usage
//
//	f, err := recurrence.Fibonacci(90)
//	// f.String() == "2880067194370816120"
//
//	f, err = recurrence.Fibonacci(30, recurrence.WithStrategy(recurrence.Memoized))
//
//	n, err := recurrence.Size([]any{1, []any{2, 3}, []any{4, []any{5}}})
//	// n == 5
//
// Errors
//
//   - ErrNegativeIndex — Fibonacci(n) with n < 0; raised before any recursion.
//   - ErrBadInput      — an unknown Strategy, or a nested value containing a
//     chan, func, or unsafe pointer.
//
// All functions are pure and safe for concurrent use.
package recurrence
