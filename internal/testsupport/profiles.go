package testsupport

import (
	"sort"
	"strings"
	"testing"

	"langid/internal/config"
	"langid/internal/identify"
	"langid/internal/logging"
	"langid/internal/profile"
	"langid/internal/profiles"
	"langid/internal/tokenizer"
)

// Corpora holds small training texts keyed by language code.
var Corpora = map[string]string{
	"en": "The quick brown fox jumps over the lazy dog while the old farmer " +
		"watches from the gate. Every morning the village children walk to " +
		"school along the river and talk about the things they have seen.",
	"de": "Der schnelle braune Fuchs springt ueber den faulen Hund waehrend " +
		"der alte Bauer vom Tor aus zusieht. Jeden Morgen gehen die Kinder " +
		"des Dorfes am Fluss entlang zur Schule und sprechen ueber alles.",
	"fr": "Le rapide renard brun saute par dessus le chien paresseux pendant " +
		"que le vieux fermier regarde depuis la porte. Chaque matin les " +
		"enfants du village marchent le long de la riviere vers leur ecole.",
}

// testVocab assigns every corpus word a stable id so independently built
// tokenizers agree with the seeded profiles.
var testVocab = func() map[string]int {
	langs := make([]string, 0, len(Corpora))
	for lang := range Corpora {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	ids := map[string]int{}
	for _, lang := range langs {
		for _, w := range strings.Fields(profile.Normalize(Corpora[lang])) {
			if _, ok := ids[w]; !ok {
				ids[w] = len(ids)
			}
		}
	}
	return ids
}()

// WordTokenizer returns a deterministic word-level tokenizer backed by the
// shared test vocabulary. It accepts raw text, normalizing internally so the
// same input maps to the same ids whether it arrives from training or from
// identification. Words outside the vocabulary share one id.
func WordTokenizer() tokenizer.Tokenizer {
	unknown := len(testVocab)
	return tokenizer.Func(func(text string) ([]int, error) {
		words := strings.Fields(profile.Normalize(text))
		out := make([]int, 0, len(words))
		for _, w := range words {
			id, ok := testVocab[w]
			if !ok {
				id = unknown
			}
			out = append(out, id)
		}
		return out, nil
	})
}

// SeedProfiles trains char and subword profiles from Corpora into the
// config's profiles directory and returns the loaded set.
func SeedProfiles(t testing.TB, cfg *config.Config) *profiles.Set {
	t.Helper()

	tok := WordTokenizer()
	for lang, corpus := range Corpora {
		normalized := profile.Normalize(corpus)
		chars := profile.CharNgrams(normalized, cfg.Identify.NgramSize, cfg.Identify.ProfileSize)
		if _, err := profiles.SaveChars(cfg.Paths.ProfilesDir, lang, chars); err != nil {
			t.Fatalf("save char profile %s: %v", lang, err)
		}
		tokenIDs, err := tok.Encode(corpus)
		if err != nil {
			t.Fatalf("tokenize corpus %s: %v", lang, err)
		}
		subwords := profile.Subwords(tokenIDs, cfg.Identify.ProfileSize)
		if _, err := profiles.SaveSubwords(cfg.Paths.ProfilesDir, lang, subwords); err != nil {
			t.Fatalf("save subword profile %s: %v", lang, err)
		}
	}

	set, err := profiles.Load(cfg.Paths.ProfilesDir, logging.NewNop())
	if err != nil {
		t.Fatalf("load profiles: %v", err)
	}
	return set
}

// NewService builds an identification service over seeded profiles. The
// returned tokenizer matches the one used during seeding.
func NewService(t testing.TB, cfg *config.Config, set *profiles.Set) *identify.Service {
	t.Helper()

	svc, err := identify.NewService(set.Chars(), set.Subwords(), WordTokenizer(), cfg.Identify.Alpha, identify.Options{
		NgramSize:   cfg.Identify.NgramSize,
		ProfileSize: cfg.Identify.ProfileSize,
		TopN:        cfg.Identify.TopN,
	})
	if err != nil {
		t.Fatalf("build identify service: %v", err)
	}
	return svc
}
