// Package lcs computes the longest common subsequence of two strings via
// dynamic programming, with optional reconstruction and memory optimizations.
//
// 🚀 What is an LCS?
//
//	The longest sequence of characters appearing in both inputs in the same
//	relative order (not necessarily contiguously). LCS("AGGTAB", "GXTXAYB")
//	is "GTAB". It underpins diff tools, plagiarism detection, and
//	bioinformatics alignment.
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, supports reconstruction
//   - two-row mode: O(min(N,M)) memory when only the length is needed
//   - Unicode-correct: inputs are compared rune by rune, not byte by byte
//
// ⚙️ Usage:
//
//	opts := lcs.DefaultOptions()
//	opts.ReturnSequence = true           // also reconstruct the subsequence
//	opts.MemoryMode = lcs.FullMatrix     // required for ReturnSequence
//
//	length, seq, err := lcs.LCS("AGGTAB", "GXTXAYB", &opts)
//	// length == 4, seq == "GTAB"
//
// Reconstruction bias
//
//	When several subsequences of maximal length exist, the backtrack prefers
//	the first input's earlier characters (ties walk up before left), so the
//	result is deterministic.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
//
// Errors:
//   - ErrSequenceNeedsMatrix — ReturnSequence=true with MemoryMode=TwoRows.
//   - ErrBadInput            — unknown MemoryMode.
//
// An empty input is not an error: the LCS with an empty string is empty.
package lcs
