package sorting

import (
	"cmp"
	"slices"
)

// Selection returns a copy of seq sorted ascending by the natural order of T,
// using selection sort. NOT stable: the long-range swap that places each
// minimum can reorder equal elements. O(n²) time, exactly n-1 swaps.
func Selection[T cmp.Ordered](seq []T) []T {
	out, _ := SelectionFunc(seq, cmp.Compare[T])
	return out
}

// SelectionFunc returns a copy of seq sorted ascending under compare, using
// selection sort. NOT stable. Returns ErrNilComparator for a nil compare.
func SelectionFunc[T any](seq []T, compare Comparator[T]) ([]T, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	out := slices.Clone(seq)

	for i := 0; i < len(out)-1; i++ {
		min := i
		for j := i + 1; j < len(out); j++ {
			if compare(out[j], out[min]) < 0 {
				min = j
			}
		}
		if min != i {
			out[i], out[min] = out[min], out[i]
		}
	}

	return out, nil
}
