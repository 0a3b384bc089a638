// Package sorting produces sorted copies of generic slices using three classic
// comparison sorts: bubble, selection, and merge.
//
// What
//
//   - Bubble / BubbleFunc:       O(n²) adjacent-swap sort; STABLE (swaps occur
//     only on a strict inversion, so equal elements never pass each other).
//   - Selection / SelectionFunc: O(n²) minimum-selection sort; NOT stable (the
//     long-range swap can reorder equal elements) — fixed, documented behavior.
//   - Merge / MergeFunc:         O(n log n) divide-and-conquer sort; STABLE
//     (on ties the left half wins, preserving input order).
//
// Every sort returns a fresh slice and leaves its input untouched. The output
// is always a permutation of the input: no element is ever lost or duplicated,
// whatever the comparator does.
//
// Ordering
//
//	The plain forms (Bubble, Selection, Merge) sort by the natural ascending
//	order of the element type. The *Func forms accept a three-way comparator
//	(negative / zero / positive, as in cmp.Compare) and reject a nil one with
//	ErrNilComparator. A comparator that is not a consistent total order yields
//	an arbitrary permutation — still the same multiset, never a crash.
//
// Complexity (n = len(seq))
//
//   - Bubble, Selection: O(n²) time, O(n) memory (the output copy)
//   - Merge:             O(n log n) time, O(n) memory
//
// Usage
//
//	out := sorting.Merge([]int{5, 3, 3, 1})
//	// out == [1 3 3 5], the two 3s in their original relative order
//
//	byLen, err := sorting.MergeFunc(words, func(a, b string) int {
//	    return len(a) - len(b)
//	})
//
// Errors
//
//   - ErrNilComparator — a *Func form received a nil comparator; raised before
//     any element is touched.
//
// All functions are pure and safe for concurrent use.
package sorting
