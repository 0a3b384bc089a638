package seqs

import (
	"strings"

	"github.com/katalvlaran/algokit/sorting"
)

// WordCount pairs a word with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// Frequency returns the occurrence count of each whitespace-separated word in
// text, lower-cased. Punctuation is not stripped: "go," and "go" are distinct.
func Frequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		freq[w]++
	}

	return freq
}

// TopN returns the n most frequent words of text, descending by count.
// Words with equal counts are ordered by first appearance in the text —
// guaranteed by sorting with the stable merge sort. n larger than the
// vocabulary returns every word; n <= 0 returns an empty slice.
func TopN(text string, n int) []WordCount {
	if n <= 0 {
		return []WordCount{}
	}

	freq := make(map[string]int)
	counts := make([]WordCount, 0)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if freq[w] == 0 {
			counts = append(counts, WordCount{Word: w}) // first appearance claims the slot
		}
		freq[w]++
	}
	for i := range counts {
		counts[i].Count = freq[counts[i].Word]
	}

	// counts is in first-appearance order; the stable sort keeps that order
	// within equal counts.
	ranked, _ := sorting.MergeFunc(counts, func(a, b WordCount) int {
		return b.Count - a.Count
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}
