package lcs

import (
	"errors"
	"fmt"
)

// LCS — Longest Common Subsequence
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b) in runes. Allocate (n+1)x(m+1) DP matrix L.
//  2. L[0][j] = L[i][0] = 0 (LCS with an empty prefix is empty).
//  3. For i = 1..n, j = 1..m:
//     a[i-1] == b[j-1]: L[i][j] = L[i-1][j-1] + 1
//     otherwise:        L[i][j] = max(L[i-1][j], L[i][j-1])
//  4. length = L[n][m].
//  5. If ReturnSequence && MemoryMode==FullMatrix, backtrack from (n,m),
//     collecting matched runes; on ties walk up before left.
//
// Memory Modes:
//   - FullMatrix — store full L, support ReturnSequence. Memory: O(n·m).
//   - TwoRows    — store only two rows. Memory: O(min(n,m)).
//     ReturnSequence is not supported.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(min(n,m)) (TwoRows)
var (
	// ErrSequenceNeedsMatrix indicates that reconstruction requires FullMatrix mode.
	ErrSequenceNeedsMatrix = errors.New("lcs: ReturnSequence requires MemoryMode=FullMatrix")

	// ErrBadInput indicates an unknown MemoryMode.
	ErrBadInput = errors.New("lcs: invalid input")
)

// LCS computes the longest common subsequence of a and b.
// Returns (length, sequence, error); sequence is empty unless
// opts.ReturnSequence is true, which requires MemoryMode=FullMatrix.
// A nil opts means DefaultOptions.
func LCS(a, b string, opts *Options) (length int, seq string, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	switch o.MemoryMode {
	case FullMatrix, TwoRows:
	default:
		return 0, "", fmt.Errorf("%w: unknown memory mode (%d)", ErrBadInput, o.MemoryMode)
	}
	if o.ReturnSequence && o.MemoryMode != FullMatrix {
		return 0, "", ErrSequenceNeedsMatrix
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0, "", nil
	}

	if o.MemoryMode == TwoRows {
		return lcsTwoRows(ra, rb), "", nil
	}

	return lcsFullMatrix(ra, rb, o.ReturnSequence)
}

// Length is shorthand for the length-only computation in TwoRows mode.
func Length(a, b string) int {
	o := Options{MemoryMode: TwoRows}
	n, _, _ := LCS(a, b, &o)

	return n
}

// lcsFullMatrix fills the complete DP matrix and optionally backtracks.
func lcsFullMatrix(ra, rb []rune, wantSeq bool) (int, string, error) {
	n, m := len(ra), len(rb)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case ra[i-1] == rb[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	if !wantSeq {
		return dp[n][m], "", nil
	}

	// Backtrack from (n,m): collect matches, walk up before left on ties.
	out := make([]rune, 0, dp[n][m])
	for i, j := n, m; i > 0 && j > 0; {
		switch {
		case ra[i-1] == rb[j-1]:
			out = append(out, ra[i-1])
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	// reverse to restore left-to-right order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return dp[n][m], string(out), nil
}

// lcsTwoRows keeps only the previous and current DP rows, rolling them as
// the fill advances. The shorter input becomes the row dimension.
func lcsTwoRows(ra, rb []rune) int {
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	n, m := len(ra), len(rb)

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case ra[i-1] == rb[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
