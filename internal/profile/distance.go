package profile

// RankIndex maps each symbol of a reference profile to its zero-based rank.
// Duplicate symbols keep their first rank; well-formed profiles contain none.
func RankIndex[S comparable](ref []S) map[S]int {
	ranks := make(map[S]int, len(ref))
	for i, sym := range ref {
		if _, ok := ranks[sym]; !ok {
			ranks[sym] = i
		}
	}
	return ranks
}

// Distance computes the out-of-place distance of a text profile relative to a
// reference profile. Each text symbol contributes the absolute difference
// between its rank in the text and its rank in the reference, or the fixed
// penalty when the reference does not contain it.
//
// The metric is deliberately asymmetric: only the text profile is iterated,
// so reference symbols absent from the text contribute nothing. Swapping the
// arguments changes the result.
func Distance[S comparable](text, ref []S, penalty int) int {
	ranks := RankIndex(ref)
	total := 0
	for i, sym := range text {
		if r, ok := ranks[sym]; ok {
			if i >= r {
				total += i - r
			} else {
				total += r - i
			}
		} else {
			total += penalty
		}
	}
	return total
}
