package api_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"langid/internal/api"
	"langid/internal/history"
	"langid/internal/identify"
)

func TestFromResult(t *testing.T) {
	result := identify.Result{
		Prediction: "en",
		Distribution: []identify.LanguageScore{
			{Lang: "en", Score: 120},
			{Lang: "de", Score: 310.5},
		},
		TopFeatures: []string{"the", "he ", " th"},
	}

	resp := api.FromResult(result, "simple", 0.5, 42*time.Millisecond)
	if resp.Prediction != "en" {
		t.Fatalf("unexpected prediction: %q", resp.Prediction)
	}
	if len(resp.Distribution) != 2 || resp.Distribution[1].Score != 310.5 {
		t.Fatalf("unexpected distribution: %#v", resp.Distribution)
	}
	if resp.Model != "simple" || resp.Alpha != 0.5 || resp.DurationMS != 42 {
		t.Fatalf("unexpected metadata: %#v", resp)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error field: %q", resp.Error)
	}
}

func TestResponseKeepsZeroAlphaAndDuration(t *testing.T) {
	result := identify.Result{
		Prediction:   "fr",
		Distribution: []identify.LanguageScore{{Lang: "fr", Score: 98.2}},
	}

	// Alpha 0 means pure subword scoring; it must survive serialization,
	// as must a sub-millisecond duration.
	resp := api.FromResult(result, "advanced", 0, 400*time.Microsecond)
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"alpha":0`) {
		t.Fatalf("alpha missing from payload: %s", data)
	}
	if !strings.Contains(string(data), `"duration_ms":0`) {
		t.Fatalf("duration missing from payload: %s", data)
	}
}

func TestFromRecord(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	rec := history.Record{
		UUID:       "abc-123",
		Sample:     "hello world",
		Model:      "advanced",
		Alpha:      0.7,
		Prediction: "en",
		Score:      87.5,
		Duration:   13 * time.Millisecond,
		CreatedAt:  created,
	}

	entry := api.FromRecord(rec)
	if entry.UUID != "abc-123" || entry.Prediction != "en" || entry.DurationMS != 13 {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry.CreatedAt != "2026-03-14T09:26:53Z" {
		t.Fatalf("unexpected timestamp: %q", entry.CreatedAt)
	}
}

func TestLanguageInfos(t *testing.T) {
	infos := api.LanguageInfos([]string{"en", "de"}, map[string]bool{"en": true})
	if len(infos) != 2 {
		t.Fatalf("expected two infos, got %d", len(infos))
	}
	if infos[0].Name != "English" || !infos[0].Hybrid {
		t.Fatalf("unexpected first info: %#v", infos[0])
	}
	if infos[1].Name != "German" || infos[1].Hybrid {
		t.Fatalf("unexpected second info: %#v", infos[1])
	}
}
