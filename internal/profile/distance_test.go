package profile_test

import (
	"testing"

	"langid/internal/profile"
)

func TestDistanceIdenticalProfiles(t *testing.T) {
	p := []string{"the", "he ", "e a", " an", "and"}
	if got := profile.Distance(p, p, 300); got != 0 {
		t.Fatalf("distance of profile against itself = %d, want 0", got)
	}
}

func TestDistanceRankDisplacement(t *testing.T) {
	text := []string{"aa", "bb", "cc"}
	ref := []string{"bb", "aa", "cc"}
	// aa: |0-1| + bb: |1-0| + cc: |2-2| = 2
	if got := profile.Distance(text, ref, 300); got != 2 {
		t.Fatalf("distance = %d, want 2", got)
	}
}

func TestDistanceAppliesPenaltyForMissingSymbols(t *testing.T) {
	text := []string{"xx", "yy"}
	ref := []string{"aa", "bb"}
	if got := profile.Distance(text, ref, 300); got != 600 {
		t.Fatalf("distance = %d, want 600", got)
	}
}

func TestDistanceUpperBound(t *testing.T) {
	text := []string{"aa", "bb", "cc", "dd"}
	ref := []string{"ee"}
	penalty := 300
	got := profile.Distance(text, ref, penalty)
	if got > len(text)*penalty {
		t.Fatalf("distance %d exceeds bound %d", got, len(text)*penalty)
	}
}

// The metric iterates only the text profile, so reference symbols missing
// from the text contribute nothing and the arguments are not interchangeable.
func TestDistanceAsymmetry(t *testing.T) {
	text := []string{"aa"}
	ref := []string{"aa", "bb", "cc"}
	forward := profile.Distance(text, ref, 300)
	if forward != 0 {
		t.Fatalf("forward distance = %d, want 0", forward)
	}
	backward := profile.Distance(ref, text, 300)
	if backward != 600 {
		t.Fatalf("backward distance = %d, want 600", backward)
	}
}

func TestDistanceEmptyTextProfile(t *testing.T) {
	if got := profile.Distance(nil, []string{"aa"}, 300); got != 0 {
		t.Fatalf("distance for empty text profile = %d, want 0", got)
	}
}

func TestRankIndex(t *testing.T) {
	ranks := profile.RankIndex([]int{10, 20, 30})
	if ranks[10] != 0 || ranks[20] != 1 || ranks[30] != 2 {
		t.Fatalf("unexpected rank index: %v", ranks)
	}
}
