package identify

import (
	"fmt"
	"sort"

	"langid/internal/tokenizer"
)

// Model selects an identifier implementation.
type Model string

const (
	// ModelSimple scores with character n-grams only.
	ModelSimple Model = "simple"
	// ModelAdvanced blends character and subword signals.
	ModelAdvanced Model = "advanced"
)

// ParseModel validates a model choice string.
func ParseModel(value string) (Model, error) {
	switch Model(value) {
	case ModelSimple, ModelAdvanced:
		return Model(value), nil
	default:
		return "", fmt.Errorf("unknown model %q (expected %q or %q)", value, ModelSimple, ModelAdvanced)
	}
}

// Service dispatches identification requests to the simple or hybrid
// identifier by model choice. The reference sets and tokenizer are injected
// once at construction and shared read-only by every call, so a single
// Service handles concurrent requests without coordination.
type Service struct {
	simple       *Ngram
	hybrid       *Hybrid
	charRefs     map[string][]string
	subRefs      map[string][]int
	tok          tokenizer.Tokenizer
	opts         Options
	defaultAlpha float64
}

// NewService builds a dispatcher over the given reference sets. The subword
// set and tokenizer may be nil, in which case only the simple model is
// available. DefaultAlpha is used when a request does not override alpha.
func NewService(charRefs map[string][]string, subRefs map[string][]int, tok tokenizer.Tokenizer, defaultAlpha float64, opts Options) (*Service, error) {
	if defaultAlpha < 0 || defaultAlpha > 1 {
		return nil, fmt.Errorf("default alpha must be between 0.0 and 1.0, got %v", defaultAlpha)
	}
	opts = opts.withDefaults()
	svc := &Service{
		simple:       NewNgram(charRefs, opts),
		charRefs:     charRefs,
		subRefs:      subRefs,
		tok:          tok,
		opts:         opts,
		defaultAlpha: defaultAlpha,
	}
	if tok != nil && len(subRefs) > 0 {
		hybrid, err := NewHybrid(charRefs, subRefs, tok, defaultAlpha, opts)
		if err != nil {
			return nil, err
		}
		svc.hybrid = hybrid
	}
	return svc, nil
}

// HybridAvailable reports whether the advanced model can be served.
func (s *Service) HybridAvailable() bool { return s.hybrid != nil }

// DefaultAlpha returns the configured default blend weight.
func (s *Service) DefaultAlpha() float64 { return s.defaultAlpha }

// Languages returns the codes scorable by the given model, sorted.
func (s *Service) Languages(model Model) []string {
	if model != ModelAdvanced {
		return s.simple.Languages()
	}
	codes := make([]string, 0, len(s.charRefs))
	for code := range s.charRefs {
		if _, ok := s.subRefs[code]; ok {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Identify routes a request to the chosen model. For the advanced model an
// alpha override derives a fresh hybrid identifier from the shared reference
// sets; nothing is reloaded.
func (s *Service) Identify(text string, model Model, alpha float64) (Result, error) {
	switch model {
	case ModelSimple:
		return s.simple.Identify(text)
	case ModelAdvanced:
		if s.hybrid == nil {
			return Result{}, fmt.Errorf("advanced model unavailable: %w", ErrInsufficientProfiles)
		}
		if alpha == s.hybrid.Alpha() {
			return s.hybrid.Identify(text)
		}
		hybrid, err := NewHybrid(s.charRefs, s.subRefs, s.tok, alpha, s.opts)
		if err != nil {
			return Result{}, err
		}
		return hybrid.Identify(text)
	default:
		return Result{}, fmt.Errorf("unknown model %q", model)
	}
}
