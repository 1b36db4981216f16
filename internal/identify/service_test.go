package identify_test

import (
	"errors"
	"testing"

	"langid/internal/identify"
)

func newTestService(t *testing.T) *identify.Service {
	t.Helper()
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	tok := newWordTokenizer()
	charRefs, subRefs := testHybridRefs(t, tok, opts)
	svc, err := identify.NewService(charRefs, subRefs, tok, 0.5, opts)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestParseModel(t *testing.T) {
	for _, value := range []string{"simple", "advanced"} {
		if _, err := identify.ParseModel(value); err != nil {
			t.Fatalf("ParseModel(%q) failed: %v", value, err)
		}
	}
	if _, err := identify.ParseModel("fancy"); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestServiceDispatchesSimple(t *testing.T) {
	svc := newTestService(t)
	result, err := svc.Identify("This is a test sentence written in English.", identify.ModelSimple, 0.5)
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if result.Prediction != "en" {
		t.Fatalf("prediction = %q, want en", result.Prediction)
	}
}

func TestServiceDispatchesAdvanced(t *testing.T) {
	svc := newTestService(t)
	if !svc.HybridAvailable() {
		t.Fatal("hybrid model should be available")
	}
	result, err := svc.Identify("Das ist ein Test, der auf Deutsch geschrieben wurde.", identify.ModelAdvanced, 0.5)
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if result.Prediction != "de" {
		t.Fatalf("prediction = %q, want de", result.Prediction)
	}
}

func TestServiceAlphaOverride(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Identify("The weather is pleasant today in the garden.", identify.ModelAdvanced, 1.0); err != nil {
		t.Fatalf("Identify with alpha override failed: %v", err)
	}
	if _, err := svc.Identify("some text", identify.ModelAdvanced, 1.5); err == nil {
		t.Fatal("expected error for out-of-range alpha override")
	}
}

func TestServiceWithoutTokenizer(t *testing.T) {
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	svc, err := identify.NewService(testCharRefs(t, opts), nil, nil, 0.5, opts)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if svc.HybridAvailable() {
		t.Fatal("hybrid model should be unavailable without a tokenizer")
	}
	if _, err := svc.Identify("some text here please", identify.ModelAdvanced, 0.5); !errors.Is(err, identify.ErrInsufficientProfiles) {
		t.Fatalf("expected ErrInsufficientProfiles for unavailable model, got %v", err)
	}
}

func TestServiceLanguagesIntersection(t *testing.T) {
	opts := identify.Options{NgramSize: 3, ProfileSize: 300, TopN: 3}
	tok := newWordTokenizer()
	charRefs, subRefs := testHybridRefs(t, tok, opts)
	delete(subRefs, "fr")
	svc, err := identify.NewService(charRefs, subRefs, tok, 0.5, opts)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	simple := svc.Languages(identify.ModelSimple)
	if len(simple) != 3 {
		t.Fatalf("simple languages = %v, want 3 codes", simple)
	}
	advanced := svc.Languages(identify.ModelAdvanced)
	if len(advanced) != 2 {
		t.Fatalf("advanced languages = %v, want 2 codes", advanced)
	}
	for _, code := range advanced {
		if code == "fr" {
			t.Fatalf("fr lacks a subword profile and must not be scorable: %v", advanced)
		}
	}
}

func TestNewServiceValidatesDefaultAlpha(t *testing.T) {
	if _, err := identify.NewService(nil, nil, nil, 1.5, identify.Options{}); err == nil {
		t.Fatal("expected error for default alpha out of range")
	}
}
