package main

import (
	"strings"
	"testing"

	"langid/internal/api"
	"langid/internal/trainer"
)

func TestScoreTableFormatsTwoDecimals(t *testing.T) {
	rendered := scoreTable([]api.LanguageScore{
		{Lang: "en", Score: 120},
		{Lang: "de", Score: 310.5},
	})

	for _, fragment := range []string{"Language", "Score", "120.00", "310.50"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in table, got:\n%s", fragment, rendered)
		}
	}
	if strings.Index(rendered, "en") > strings.Index(rendered, "de") {
		t.Fatalf("expected distribution order preserved, got:\n%s", rendered)
	}
}

func TestLanguageTableShowsHybridFlag(t *testing.T) {
	rendered := languageTable([]api.LanguageInfo{
		{Code: "en", Name: "English", Hybrid: true},
		{Code: "de", Name: "German", Hybrid: false},
	})

	for _, fragment := range []string{"English", "German", "yes", "no"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in table, got:\n%s", fragment, rendered)
		}
	}
}

func TestHistoryTableColumns(t *testing.T) {
	rendered := historyTable([]api.HistoryEntry{
		{CreatedAt: "2026-03-14T09:26:53Z", Prediction: "fr", Model: "advanced", Score: 87.5, DurationMS: 13, Sample: "le rapide renard"},
	})

	for _, fragment := range []string{"When", "fr", "advanced", "87.50", "13", "le rapide renard"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in table, got:\n%s", fragment, rendered)
		}
	}
}

func TestTrainingTableColumns(t *testing.T) {
	rendered := trainingTable([]trainer.Report{
		{Lang: "en", CharCount: 300, SubwordCount: 120, CorpusBytes: 4096},
	})

	for _, fragment := range []string{"Char n-grams", "Subwords", "Corpus bytes", "300", "120", "4096"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in table, got:\n%s", fragment, rendered)
		}
	}
}

func TestRequestCountTableSkipsEmptyCounts(t *testing.T) {
	if rendered := requestCountTable([]string{"en", "de"}, nil); rendered != "" {
		t.Fatalf("expected no table without counts, got:\n%s", rendered)
	}

	rendered := requestCountTable([]string{"en", "de"}, map[string]int{"de": 4})
	if !strings.Contains(rendered, "de") || !strings.Contains(rendered, "4") {
		t.Fatalf("expected de row, got:\n%s", rendered)
	}
	if strings.Contains(rendered, "en") {
		t.Fatalf("expected languages without requests omitted, got:\n%s", rendered)
	}
}
