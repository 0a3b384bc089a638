package search

import (
	"cmp"
	"fmt"
)

// Linear scans seq from position 0 upward and returns the first position
// holding target, or (NoPosition, ErrNotFound) when target is absent.
// The slice may be in any order. O(n) time, O(1) memory.
func Linear[T comparable](seq []T, target T) (int, error) {
	for i, v := range seq {
		if v == target {
			return i, nil
		}
	}

	return NoPosition, ErrNotFound
}

// LinearFunc scans seq from position 0 upward and returns the first position
// whose element satisfies pred, or (NoPosition, ErrNotFound) when none does.
// A nil pred is rejected with ErrBadInput before any element is examined.
func LinearFunc[T any](seq []T, pred func(T) bool) (int, error) {
	if pred == nil {
		return NoPosition, fmt.Errorf("%w: nil predicate", ErrBadInput)
	}
	for i, v := range seq {
		if pred(v) {
			return i, nil
		}
	}

	return NoPosition, ErrNotFound
}

// Binary locates target in seq, which must be sorted ascending under the
// natural order of T (caller's responsibility, not verified). When target
// occurs more than once, the leftmost position is returned. O(log n) time.
func Binary[T cmp.Ordered](seq []T, target T) (int, error) {
	return BinaryFunc(seq, target, cmp.Compare[T])
}

// BinaryFunc locates target in seq, which must be sorted ascending under
// compare (caller's responsibility, not verified). compare follows the usual
// three-way contract: negative if a<b, zero if a==b, positive if a>b.
// When target occurs more than once, the leftmost position is returned.
// A nil compare is rejected with ErrBadInput before any comparison.
func BinaryFunc[T any](seq []T, target T, compare func(a, b T) int) (int, error) {
	if compare == nil {
		return NoPosition, fmt.Errorf("%w: nil comparator", ErrBadInput)
	}

	// Lower-bound halving: on an equal midpoint we keep shrinking the upper
	// bound, so the interval converges on the first position >= target.
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if compare(seq[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(seq) && compare(seq[lo], target) == 0 {
		return lo, nil
	}

	return NoPosition, ErrNotFound
}
