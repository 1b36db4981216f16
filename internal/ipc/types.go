package ipc

import "langid/internal/api"

// IdentifyRequest carries one identification request.
type IdentifyRequest = api.IdentifyRequest

// IdentifyResponse carries the scored prediction or a soft failure message.
type IdentifyResponse = api.IdentifyResponse

// StopRequest stops the daemon.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse represents daemon runtime information.
type StatusResponse struct {
	Running        bool           `json:"running"`
	PID            int            `json:"pid"`
	ProfilesDir    string         `json:"profiles_dir"`
	Languages      []string       `json:"languages"`
	HybridReady    bool           `json:"hybrid_ready"`
	DefaultModel   string         `json:"default_model"`
	HistoryDBPath  string         `json:"history_db_path"`
	LockPath       string         `json:"lock_path"`
	HistoryTotal   int            `json:"history_total"`
	HistoryByLang  map[string]int `json:"history_by_lang"`
	RequestsServed int64          `json:"requests_served"`
}

// LanguagesRequest lists the trained languages.
type LanguagesRequest struct{}

// LanguagesResponse contains the trained languages.
type LanguagesResponse struct {
	Languages []api.LanguageInfo `json:"languages"`
}

// HistoryRequest fetches recent identification records.
type HistoryRequest struct {
	Limit int `json:"limit"`
}

// HistoryResponse contains recent identification records.
type HistoryResponse struct {
	Entries []api.HistoryEntry `json:"entries"`
}

// HistoryClearRequest removes all history records.
type HistoryClearRequest struct{}

// HistoryClearResponse indicates clear result.
type HistoryClearResponse struct {
	Cleared bool `json:"cleared"`
}
