package profile_test

import (
	"reflect"
	"testing"

	"langid/internal/profile"
)

func TestCharNgramsOrdering(t *testing.T) {
	// "ab" occurs 3 times, "ba" twice.
	got := profile.CharNgrams("ababab", 2, 2)
	want := []string{"ab", "ba"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CharNgrams = %v, want %v", got, want)
	}
}

func TestCharNgramsFirstSeenTieBreak(t *testing.T) {
	// All trigrams of "abcdef" are unique, so ordering follows scan order.
	got := profile.CharNgrams("abcdef", 3, 10)
	want := []string{"abc", "bcd", "cde", "def"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CharNgrams = %v, want %v", got, want)
	}
}

func TestCharNgramsShortText(t *testing.T) {
	if got := profile.CharNgrams("ab", 3, 10); got != nil {
		t.Fatalf("expected nil profile for short text, got %v", got)
	}
	if got := profile.CharNgrams("", 3, 10); got != nil {
		t.Fatalf("expected nil profile for empty text, got %v", got)
	}
}

func TestCharNgramsTruncatesToSize(t *testing.T) {
	got := profile.CharNgrams("abcdefgh", 2, 3)
	if len(got) != 3 {
		t.Fatalf("expected profile of length 3, got %v", got)
	}
}

func TestSubwords(t *testing.T) {
	got := profile.Subwords([]int{7, 3, 7, 9, 3, 7}, 2)
	want := []int{7, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Subwords = %v, want %v", got, want)
	}
}

func TestSubwordsEmpty(t *testing.T) {
	if got := profile.Subwords(nil, 5); got != nil {
		t.Fatalf("expected nil profile for empty input, got %v", got)
	}
}

func TestSubwordsTieBreakFirstSeen(t *testing.T) {
	// 4 and 2 both occur twice; 4 was seen first.
	got := profile.Subwords([]int{4, 2, 4, 2, 9}, 3)
	want := []int{4, 2, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Subwords = %v, want %v", got, want)
	}
}
