package seqs

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Dedupe returns seq with duplicate elements removed; the first occurrence of
// each value keeps its position, later occurrences are dropped. O(n) time.
func Dedupe[T comparable](seq []T) []T {
	seen := make(map[T]struct{}, len(seq))
	out := make([]T, 0, len(seq))
	for _, v := range seq {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Rotate returns a copy of seq rotated right by k positions:
// Rotate([1,2,3,4,5], 2) == [4,5,1,2,3]. Negative k rotates left;
// k is normalized modulo len(seq), so any magnitude is valid.
func Rotate[T any](seq []T, k int) []T {
	n := len(seq)
	if n == 0 {
		return slices.Clone(seq)
	}
	k = ((k % n) + n) % n

	out := make([]T, 0, n)
	out = append(out, seq[n-k:]...)
	out = append(out, seq[:n-k]...)

	return out
}

// PairsWithSum returns every distinct pair of values in seq summing to sum.
// Each pair is ordered (small, large), appears at most once, and pairs are
// reported in the order their second member is first encountered.
// Single-pass complement scan: O(n) time, O(n) memory.
func PairsWithSum[T constraints.Integer](seq []T, sum T) [][2]T {
	seen := make(map[T]struct{}, len(seq))
	emitted := make(map[[2]T]struct{})
	out := make([][2]T, 0)
	for _, v := range seq {
		complement := sum - v
		if _, ok := seen[complement]; ok {
			pair := [2]T{min(v, complement), max(v, complement)}
			if _, dup := emitted[pair]; !dup {
				emitted[pair] = struct{}{}
				out = append(out, pair)
			}
		}
		seen[v] = struct{}{}
	}

	return out
}
