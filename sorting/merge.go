package sorting

import (
	"cmp"
	"slices"
)

// Merge returns a copy of seq sorted ascending by the natural order of T,
// using merge sort. Stable: on ties the element from the left half wins,
// so equal elements keep their input order. O(n log n) time, O(n) memory.
func Merge[T cmp.Ordered](seq []T) []T {
	out, _ := MergeFunc(seq, cmp.Compare[T])
	return out
}

// MergeFunc returns a copy of seq sorted ascending under compare, using
// merge sort. Stable. Returns ErrNilComparator for a nil compare.
func MergeFunc[T any](seq []T, compare Comparator[T]) ([]T, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	if len(seq) <= 1 {
		return slices.Clone(seq), nil
	}

	return mergeSort(slices.Clone(seq), compare), nil
}

// mergeSort recursively splits s at the midpoint and merges the sorted halves.
func mergeSort[T any](s []T, compare Comparator[T]) []T {
	if len(s) <= 1 {
		return s
	}
	mid := len(s) / 2
	left := mergeSort(s[:mid], compare)
	right := mergeSort(s[mid:], compare)

	return merge(left, right, compare)
}

// merge interleaves two sorted runs into one sorted slice.
// The <= bias (left wins on ties) is the stability guarantee.
func merge[T any](left, right []T, compare Comparator[T]) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
