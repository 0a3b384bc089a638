// Package search locates elements in generic slices, returning the matching
// position or an explicit ErrNotFound — never an ambiguous index.
//
// What
//
//   - Linear: scan positions 0..n-1 in order; works on any slice, sorted or not;
//     returns the FIRST matching position when duplicates exist.
//   - LinearFunc: same scan, but matches via a caller-supplied predicate.
//   - Binary: halve a sorted interval until the target is pinned down; when
//     duplicates exist the LEFTMOST matching position is returned (fixed,
//     documented tie-break — the halving stays biased toward the lower bound).
//   - BinaryFunc: binary search under a caller-supplied three-way comparator.
//
// Preconditions
//
//	Binary and BinaryFunc require the slice to be sorted ascending under the
//	active ordering. The precondition is the caller's responsibility and is NOT
//	verified (verification would cost the O(n) the algorithm exists to avoid);
//	an unsorted slice yields an arbitrary position or ErrNotFound.
//
// Complexity (n = len(seq))
//
//   - Linear, LinearFunc: O(n) time, O(1) memory
//   - Binary, BinaryFunc:  O(log n) time, O(1) memory
//
// Usage
//
//	pos, err := search.Binary([]int{1, 3, 3, 5}, 3)
//	if errors.Is(err, search.ErrNotFound) {
//	    // legitimate outcome, not a failure
//	}
//	// pos == 1 (leftmost of the two 3s)
//
// Errors
//
//   - ErrNotFound  — the target is absent; an outcome, not a malfunction.
//   - ErrBadInput  — nil predicate or nil comparator; raised before any scan.
//
// All functions are pure and safe for concurrent use.
package search
