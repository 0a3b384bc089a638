package sorting

import (
	"cmp"
	"slices"
)

// Bubble returns a copy of seq sorted ascending by the natural order of T,
// using bubble sort. Stable: equal elements keep their input order.
// O(n²) time; pedagogical baseline, prefer Merge for large inputs.
func Bubble[T cmp.Ordered](seq []T) []T {
	out, _ := BubbleFunc(seq, cmp.Compare[T])
	return out
}

// BubbleFunc returns a copy of seq sorted ascending under compare, using
// bubble sort. Stable. Returns ErrNilComparator for a nil compare.
func BubbleFunc[T any](seq []T, compare Comparator[T]) ([]T, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	out := slices.Clone(seq)

	// Each outer pass floats the largest remaining element to the end;
	// stop early once a pass performs no swap.
	for end := len(out) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			// Swap only on a strict inversion — this is what keeps it stable.
			if compare(out[i], out[i+1]) > 0 {
				out[i], out[i+1] = out[i+1], out[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out, nil
}
