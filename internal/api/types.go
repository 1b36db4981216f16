package api

// LanguageScore pairs a language code with its distance score.
type LanguageScore struct {
	Lang  string  `json:"lang"`
	Score float64 `json:"score"`
}

// IdentifyRequest carries one identification request over HTTP or IPC.
type IdentifyRequest struct {
	Text  string   `json:"text"`
	Model string   `json:"model,omitempty"`
	Alpha *float64 `json:"alpha,omitempty"`
}

// IdentifyResponse carries a scored prediction or a soft failure.
type IdentifyResponse struct {
	Prediction   string          `json:"prediction,omitempty"`
	Distribution []LanguageScore `json:"distribution,omitempty"`
	TopFeatures  []string        `json:"top_features,omitempty"`
	Model        string          `json:"model,omitempty"`
	Alpha        float64         `json:"alpha"`
	DurationMS   int64           `json:"duration_ms"`
	Error        string          `json:"error,omitempty"`
}

// LanguageInfo describes one trained language.
type LanguageInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Hybrid bool   `json:"hybrid"`
}

// LanguagesResponse lists the trained languages.
type LanguagesResponse struct {
	Languages []LanguageInfo `json:"languages"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running        bool           `json:"running"`
	PID            int            `json:"pid"`
	ProfilesDir    string         `json:"profiles_dir"`
	LanguageCount  int            `json:"language_count"`
	HybridReady    bool           `json:"hybrid_ready"`
	DefaultModel   string         `json:"default_model"`
	HistoryDBPath  string         `json:"history_db_path,omitempty"`
	LockFilePath   string         `json:"lock_file_path"`
	HistoryTotal   int            `json:"history_total"`
	HistoryByLang  map[string]int `json:"history_by_lang,omitempty"`
	RequestsServed int64          `json:"requests_served"`
}

// HistoryEntry describes one recorded identification request.
type HistoryEntry struct {
	UUID       string  `json:"uuid"`
	Sample     string  `json:"sample"`
	Model      string  `json:"model"`
	Alpha      float64 `json:"alpha"`
	Prediction string  `json:"prediction"`
	Score      float64 `json:"score"`
	DurationMS int64   `json:"duration_ms"`
	CreatedAt  string  `json:"created_at"`
}

// HistoryResponse wraps a collection of history entries.
type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}
