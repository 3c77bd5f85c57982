package dto

import "time"

// RefreshRequest is the body of POST /catalog/refresh. An empty location
// uses the configured default.
type RefreshRequest struct {
	Location string `json:"location" validate:"omitempty,max=100"`
}

type SourceReportResponse struct {
	Source     string `json:"source"`
	Records    int    `json:"records"`
	Dropped    int    `json:"dropped"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type RefreshResponse struct {
	Location  string                 `json:"location"`
	Size      int                    `json:"size"`
	Version   int64                  `json:"version"`
	UpdatedAt time.Time              `json:"updated_at"`
	Sources   []SourceReportResponse `json:"sources"`
}
