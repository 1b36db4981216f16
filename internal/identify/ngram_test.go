package identify_test

import (
	"errors"
	"strings"
	"testing"

	"langid/internal/identify"
	"langid/internal/profile"
)

const englishCorpus = `
The quick brown fox jumps over the lazy dog. This is a collection of English
sentences used to build a small reference profile for testing. The weather
today is rather pleasant and the children are playing in the garden. She said
that the meeting would start in the afternoon and that everyone should bring
their own notes. There is always something interesting happening in the city.`

const germanCorpus = `
Der schnelle braune Fuchs springt ueber den faulen Hund. Dies ist eine
Sammlung deutscher Saetze, mit denen ein kleines Referenzprofil erstellt
wird. Das Wetter ist heute ziemlich angenehm und die Kinder spielen im
Garten. Sie sagte, dass die Besprechung am Nachmittag beginnen wuerde und
dass alle ihre eigenen Notizen mitbringen sollten. In der Stadt passiert
immer etwas Interessantes.`

const frenchCorpus = `
Le rapide renard brun saute par dessus le chien paresseux. Ceci est une
collection de phrases francaises utilisees pour construire un petit profil
de reference. Le temps est plutot agreable aujourd hui et les enfants jouent
dans le jardin. Elle a dit que la reunion commencerait dans l apres midi et
que chacun devrait apporter ses propres notes. Il se passe toujours quelque
chose d interessant dans la ville.`

func buildCharRef(t *testing.T, corpus string, opts identify.Options) []string {
	t.Helper()
	ref := profile.CharNgrams(profile.Normalize(corpus), opts.NgramSize, opts.ProfileSize)
	if len(ref) == 0 {
		t.Fatal("reference corpus produced an empty profile")
	}
	return ref
}

func testCharRefs(t *testing.T, opts identify.Options) map[string][]string {
	t.Helper()
	return map[string][]string{
		"en": buildCharRef(t, englishCorpus, opts),
		"de": buildCharRef(t, germanCorpus, opts),
		"fr": buildCharRef(t, frenchCorpus, opts),
	}
}

func TestNgramIdentifyEnglish(t *testing.T) {
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	scorer := identify.NewNgram(testCharRefs(t, opts), opts)

	result, err := scorer.Identify("This is a test sentence written in English.")
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if result.Prediction != "en" {
		t.Fatalf("prediction = %q, want en (distribution %v)", result.Prediction, result.Distribution)
	}
}

func TestNgramIdentifyGerman(t *testing.T) {
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	scorer := identify.NewNgram(testCharRefs(t, opts), opts)

	result, err := scorer.Identify("Das ist ein Test, der auf Deutsch geschrieben wurde.")
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if result.Prediction != "de" {
		t.Fatalf("prediction = %q, want de (distribution %v)", result.Prediction, result.Distribution)
	}
}

func TestNgramDistributionSortedAndLimited(t *testing.T) {
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 2}
	scorer := identify.NewNgram(testCharRefs(t, opts), opts)

	result, err := scorer.Identify("The children are playing in the garden this afternoon.")
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if len(result.Distribution) != 2 {
		t.Fatalf("distribution length = %d, want 2", len(result.Distribution))
	}
	for i := 1; i < len(result.Distribution); i++ {
		if result.Distribution[i-1].Score > result.Distribution[i].Score {
			t.Fatalf("distribution not sorted ascending: %v", result.Distribution)
		}
	}
	if result.Distribution[0].Lang != result.Prediction {
		t.Fatalf("prediction %q does not head distribution %v", result.Prediction, result.Distribution)
	}
}

func TestNgramTopFeatures(t *testing.T) {
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	refs := testCharRefs(t, opts)
	scorer := identify.NewNgram(refs, opts)

	result, err := scorer.Identify("The meeting would start in the afternoon and everyone should bring notes.")
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if len(result.TopFeatures) == 0 || len(result.TopFeatures) > 5 {
		t.Fatalf("top features length = %d, want 1..5", len(result.TopFeatures))
	}
	winnerRanks := profile.RankIndex(refs[result.Prediction])
	lastRank := -1
	for _, feature := range result.TopFeatures {
		rank, ok := winnerRanks[feature]
		if !ok {
			t.Fatalf("feature %q not in winning reference profile", feature)
		}
		if rank < lastRank {
			t.Fatalf("features not ordered by reference rank: %v", result.TopFeatures)
		}
		lastRank = rank
	}
}

func TestNgramInsufficientProfiles(t *testing.T) {
	scorer := identify.NewNgram(nil, identify.Options{})
	if _, err := scorer.Identify("some text"); !errors.Is(err, identify.ErrInsufficientProfiles) {
		t.Fatalf("expected ErrInsufficientProfiles, got %v", err)
	}
}

func TestNgramInsufficientInputMessages(t *testing.T) {
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	scorer := identify.NewNgram(testCharRefs(t, opts), opts)

	_, tooShortErr := scorer.Identify("a")
	if !errors.Is(tooShortErr, identify.ErrInsufficientInput) {
		t.Fatalf("expected ErrInsufficientInput for short text, got %v", tooShortErr)
	}
	if !strings.Contains(tooShortErr.Error(), "too short") {
		t.Fatalf("short-text message should mention length: %v", tooShortErr)
	}

	_, strippedErr := scorer.Identify("12345 !@#$%^&*()_+")
	if !errors.Is(strippedErr, identify.ErrInsufficientInput) {
		t.Fatalf("expected ErrInsufficientInput for stripped text, got %v", strippedErr)
	}
	if !strings.Contains(strippedErr.Error(), "no usable letters") {
		t.Fatalf("stripped-text message should mention missing letters: %v", strippedErr)
	}
	if tooShortErr.Error() == strippedErr.Error() {
		t.Fatal("the two insufficient-input cases must carry distinct messages")
	}
}

func TestNgramTieBreaksLexically(t *testing.T) {
	shared := []string{"thi", "his", "is ", "s i", " is"}
	refs := map[string][]string{
		"zz": shared,
		"aa": shared,
	}
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	scorer := identify.NewNgram(refs, opts)

	result, err := scorer.Identify("this is this is this is")
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if result.Prediction != "aa" {
		t.Fatalf("tie should resolve to lexically first code, got %q", result.Prediction)
	}
}

func TestNgramLanguages(t *testing.T) {
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	scorer := identify.NewNgram(testCharRefs(t, opts), opts)
	langs := scorer.Languages()
	want := []string{"de", "en", "fr"}
	if len(langs) != len(want) {
		t.Fatalf("Languages = %v, want %v", langs, want)
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Fatalf("Languages = %v, want %v", langs, want)
		}
	}
}
