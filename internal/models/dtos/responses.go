package dtos

import "time"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// ---- UPLOADS ----

type RowOutcomeDTO struct {
	Line   int    `json:"line"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type UploadResponse struct {
	ReportType   string          `json:"report_type"`
	Filename     string          `json:"filename"`
	ReportDate   string          `json:"report_date,omitempty"`
	RowsAccepted int             `json:"rows_accepted"`
	RowsSkipped  int             `json:"rows_skipped"`
	Outcomes     []RowOutcomeDTO `json:"outcomes,omitempty"`
}

type RecentUpload struct {
	ReportType   string    `json:"report_type"`
	Filename     string    `json:"filename"`
	RowsAccepted int       `json:"rows_accepted"`
	RowsSkipped  int       `json:"rows_skipped"`
	IngestedAt   time.Time `json:"ingested_at"`
}

// UploadHistory is the GET /api/v1/uploads payload: the newest archived
// uploads plus the lifetime upload tally per report type.
type UploadHistory struct {
	Recent       []RecentUpload `json:"recent"`
	CountsByType map[string]int `json:"counts_by_type"`
}

// ---- REFRESH ----

type RefreshResponse struct {
	ReportsLoaded []RecentUpload `json:"reports_loaded"`
	Elapsed       string         `json:"elapsed"`
}

// ---- HEALTH ----

type HealthCheckResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}
