// Package lcs defines options and modes for longest-common-subsequence
// computation.
package lcs

// MemoryMode controls how LCS stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows length + reconstruction of the subsequence itself.
//     Memory: O(n·m).
//
//   - TwoRows — only keep two rows (current and previous).
//     Reduces memory to O(min(n, m)), but cannot reconstruct the sequence.
//     Use when you only need the length.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support reconstruction, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, length only, uses O(min(N,M)) memory.
	TwoRows
)

// Options configures LCS computation.
//
// Fields:
//   - ReturnSequence — if true, LCS backtracks and returns the subsequence
//     itself. Requires MemoryMode=FullMatrix.
//   - MemoryMode     — choose FullMatrix or TwoRows storage.
type Options struct {
	ReturnSequence bool
	MemoryMode     MemoryMode
}

// DefaultOptions returns Options with FullMatrix storage and no
// reconstruction.
func DefaultOptions() Options {
	return Options{ReturnSequence: false, MemoryMode: FullMatrix}
}
