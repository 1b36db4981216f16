package identify

import (
	"sort"

	"langid/internal/profile"
)

// Ngram identifies languages purely from character n-gram profiles.
type Ngram struct {
	refs map[string][]string
	opts Options
}

// NewNgram builds a character n-gram identifier over a reference set mapping
// language codes to character profiles. The map is shared, not copied; it
// must not be mutated after construction.
func NewNgram(refs map[string][]string, opts Options) *Ngram {
	return &Ngram{refs: refs, opts: opts.withDefaults()}
}

// Languages returns the language codes the identifier can score, sorted.
func (s *Ngram) Languages() []string {
	codes := make([]string, 0, len(s.refs))
	for code := range s.refs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Identify implements Identifier.
func (s *Ngram) Identify(text string) (Result, error) {
	if len(s.refs) == 0 {
		return Result{}, ErrInsufficientProfiles
	}

	textProfile, err := s.profileText(text)
	if err != nil {
		return Result{}, err
	}

	scores := make(map[string]float64, len(s.refs))
	for code, ref := range s.refs {
		scores[code] = float64(profile.Distance(textProfile, ref, s.opts.ProfileSize))
	}

	best, distribution := rankScores(scores, s.opts.TopN)
	return Result{
		Prediction:   best,
		Distribution: distribution,
		TopFeatures:  topFeatures(textProfile, s.refs[best]),
	}, nil
}

func (s *Ngram) profileText(text string) ([]string, error) {
	normalized := profile.Normalize(text)
	if normalized == "" {
		return nil, errNoLetters()
	}
	textProfile := profile.CharNgrams(normalized, s.opts.NgramSize, s.opts.ProfileSize)
	if len(textProfile) == 0 {
		return nil, errTooShort(s.opts.NgramSize)
	}
	return textProfile, nil
}

// rankScores sorts language scores ascending and selects the prediction.
// Ties rank by lexical language-code order so results are deterministic.
func rankScores(scores map[string]float64, topN int) (string, []LanguageScore) {
	ranked := make([]LanguageScore, 0, len(scores))
	for code, score := range scores {
		ranked = append(ranked, LanguageScore{Lang: code, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Lang < ranked[j].Lang
	})
	best := ranked[0].Lang
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return best, ranked
}

// topFeatures returns the text profile symbols also present in the winning
// reference, ordered by ascending reference rank, truncated to five.
func topFeatures(textProfile, ref []string) []string {
	ranks := profile.RankIndex(ref)
	shared := make([]string, 0, topFeatureCount)
	for _, gram := range textProfile {
		if _, ok := ranks[gram]; ok {
			shared = append(shared, gram)
		}
	}
	sort.Slice(shared, func(i, j int) bool {
		return ranks[shared[i]] < ranks[shared[j]]
	})
	if len(shared) > topFeatureCount {
		shared = shared[:topFeatureCount]
	}
	return shared
}
