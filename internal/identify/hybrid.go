package identify

import (
	"fmt"
	"math"

	"langid/internal/profile"
	"langid/internal/tokenizer"
)

// Hybrid identifies languages by linearly blending a character n-gram
// distance and a subword token distance per language. Alpha weights the
// character signal: 1.0 reduces to pure character scoring, 0.0 to pure
// subword scoring. Only languages present in both reference sets are scored.
type Hybrid struct {
	charRefs map[string][]string
	subRefs  map[string][]int
	tok      tokenizer.Tokenizer
	alpha    float64
	opts     Options
}

// NewHybrid builds a hybrid identifier. Alpha must lie in [0, 1] and the
// tokenizer must be non-nil. Both reference maps are shared, not copied.
func NewHybrid(charRefs map[string][]string, subRefs map[string][]int, tok tokenizer.Tokenizer, alpha float64, opts Options) (*Hybrid, error) {
	if tok == nil {
		return nil, fmt.Errorf("hybrid identifier requires a tokenizer")
	}
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return nil, fmt.Errorf("alpha must be between 0.0 and 1.0, got %v", alpha)
	}
	return &Hybrid{
		charRefs: charRefs,
		subRefs:  subRefs,
		tok:      tok,
		alpha:    alpha,
		opts:     opts.withDefaults(),
	}, nil
}

// Alpha returns the configured character-signal weight.
func (h *Hybrid) Alpha() float64 { return h.alpha }

// Identify implements Identifier. Both the character and the subword profile
// of the input must be non-empty; languages missing either reference half are
// skipped silently.
func (h *Hybrid) Identify(text string) (Result, error) {
	if len(h.charRefs) == 0 && len(h.subRefs) == 0 {
		return Result{}, ErrInsufficientProfiles
	}

	simple := Ngram{refs: h.charRefs, opts: h.opts}
	charProfile, err := simple.profileText(text)
	if err != nil {
		return Result{}, err
	}

	ids, err := h.tok.Encode(text)
	if err != nil {
		return Result{}, fmt.Errorf("tokenize text: %w", err)
	}
	subProfile := profile.Subwords(ids, h.opts.ProfileSize)
	if len(subProfile) == 0 {
		return Result{}, errNoTokens()
	}

	scores := make(map[string]float64, len(h.charRefs))
	for code, charRef := range h.charRefs {
		subRef, ok := h.subRefs[code]
		if !ok {
			continue
		}
		charDist := float64(profile.Distance(charProfile, charRef, h.opts.ProfileSize))
		subDist := float64(profile.Distance(subProfile, subRef, h.opts.ProfileSize))
		scores[code] = roundScore(h.alpha*charDist + (1-h.alpha)*subDist)
	}
	if len(scores) == 0 {
		return Result{}, ErrNoScorableLanguages
	}

	best, distribution := rankScores(scores, h.opts.TopN)
	// Token ids are not human-readable, so explanatory features come from
	// the character profiles only.
	return Result{
		Prediction:   best,
		Distribution: distribution,
		TopFeatures:  topFeatures(charProfile, h.charRefs[best]),
	}, nil
}

// roundScore limits blended scores to two decimal places for reporting.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
