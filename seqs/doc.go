// Package seqs offers small, deterministic utilities over slices: duplicate
// removal, rotation, pair-sum search, set algebra, and word-frequency analysis.
//
// What
//
//   - Dedupe:               drop repeated elements, keeping first occurrences in order.
//   - Rotate:               rotate a slice right by k positions (negative k rotates left).
//   - PairsWithSum:         all distinct value pairs summing to a target, one pass.
//   - Union / Intersect / Difference / SymmetricDifference: set algebra over
//     slices; results are deduplicated and ordered by first appearance in the
//     first operand, then the second.
//   - Frequency:            lower-cased word counts of a text.
//   - TopN:                 the n most frequent words, descending by count,
//     ties broken by first appearance in the text (stable merge underneath).
//
// Determinism
//
//	Every function returns results in a fixed, documented order — nothing
//	depends on map iteration. TopN is the only routine in the module that
//	composes another algokit package: it sorts with sorting.MergeFunc so the
//	tie rule is guaranteed by merge-sort stability.
//
// All functions copy rather than mutate their inputs and are safe for
// concurrent use.
package seqs
