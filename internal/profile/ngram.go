package profile

import "sort"

// CharNgrams builds the character n-gram profile of normalized text: every
// contiguous substring of length n is counted and the size most frequent are
// returned in descending frequency order, first-seen order among equal counts.
// Returns nil when the text is shorter than n, which callers must treat as an
// insufficient-input condition rather than an empty-but-scorable profile.
func CharNgrams(normalized string, n, size int) []string {
	if n <= 0 || size <= 0 || len(normalized) < n {
		return nil
	}
	grams := make([]string, 0, len(normalized)-n+1)
	for i := 0; i+n <= len(normalized); i++ {
		grams = append(grams, normalized[i:i+n])
	}
	return topSymbols(grams, size)
}

// Subwords builds the subword token profile of a tokenized text with the same
// frequency-then-first-seen ordering as CharNgrams. Returns nil for an empty
// token sequence.
func Subwords(tokenIDs []int, size int) []int {
	if size <= 0 || len(tokenIDs) == 0 {
		return nil
	}
	return topSymbols(tokenIDs, size)
}

// topSymbols counts occurrences and returns the size most frequent symbols.
// The stable sort over first-seen order provides the tie-break.
func topSymbols[S comparable](seq []S, size int) []S {
	counts := make(map[S]int, len(seq))
	order := make([]S, 0, len(seq))
	for _, sym := range seq {
		if counts[sym] == 0 {
			order = append(order, sym)
		}
		counts[sym]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > size {
		order = order[:size]
	}
	return order
}
