// Package algokit is your in-memory toolbox of classic sequence algorithms —
// search, sorting, recursion and the small utility problems built on top of them.
//
// 🚀 What is algokit?
//
//	A compact, dependency-light library that brings together:
//		• Search: linear scan & leftmost-biased binary search over generic slices
//		• Sorting: bubble, selection and stable merge sort, natural or custom order
//		• Recurrence: big-integer Fibonacci (iterative / memoized) & structural
//		  size/depth over nested values
//		• LCS: longest common subsequence with full-matrix or two-row memory
//		• Sequence utilities: dedupe, rotate, pair-sum, set algebra, word frequency
//		• Number theory: proper divisors, perfect & amicable numbers
//		• Text checks: palindromes & balanced brackets
//
// ✨ Why choose algokit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit contracts – sentinel errors instead of magic -1 returns
//   - Pure Go – no cgo, no hidden state, safe for concurrent callers
//   - Deterministic – stable orderings and documented tie-break rules throughout
//
// Everything is organized under small leaf packages:
//
//	search/     — Linear, LinearFunc, Binary, BinaryFunc
//	sorting/    — Bubble, Selection, Merge (+ *Func comparator forms)
//	recurrence/ — Fibonacci, Size, Depth
//	lcs/        — longest common subsequence (length and reconstruction)
//	seqs/       — Dedupe, Rotate, PairsWithSum, set ops, Frequency, TopN
//	numtheory/  — ProperDivisors, IsPerfect, AreAmicable
//	textcheck/  — IsPalindrome, BalancedBrackets
//
// No package depends on another at runtime, with one deliberate exception:
// seqs.TopN leans on sorting's stable merge for its deterministic tie rule.
//
// Dive into examples/ for runnable, narrated demos of each family.
//
//	go get github.com/katalvlaran/algokit
package algokit
