package api

import (
	"time"

	"langid/internal/history"
	"langid/internal/identify"
	"langid/internal/language"
)

// FromResult converts an identification result into its wire representation.
func FromResult(result identify.Result, model string, alpha float64, duration time.Duration) IdentifyResponse {
	distribution := make([]LanguageScore, 0, len(result.Distribution))
	for _, score := range result.Distribution {
		distribution = append(distribution, LanguageScore{Lang: score.Lang, Score: score.Score})
	}
	return IdentifyResponse{
		Prediction:   result.Prediction,
		Distribution: distribution,
		TopFeatures:  result.TopFeatures,
		Model:        model,
		Alpha:        alpha,
		DurationMS:   duration.Milliseconds(),
	}
}

// FromRecord converts a history record into its wire representation.
func FromRecord(rec history.Record) HistoryEntry {
	return HistoryEntry{
		UUID:       rec.UUID,
		Sample:     rec.Sample,
		Model:      rec.Model,
		Alpha:      rec.Alpha,
		Prediction: rec.Prediction,
		Score:      rec.Score,
		DurationMS: rec.Duration.Milliseconds(),
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}

// LanguageInfos builds the language listing for a set of trained codes.
// hybridLangs marks which codes also have a subword profile.
func LanguageInfos(codes []string, hybridLangs map[string]bool) []LanguageInfo {
	infos := make([]LanguageInfo, 0, len(codes))
	for _, code := range codes {
		infos = append(infos, LanguageInfo{
			Code:   code,
			Name:   language.DisplayName(code),
			Hybrid: hybridLangs[code],
		})
	}
	return infos
}
