package models

import "time"

// AnalysisRecord is one persisted analysis run, kept for the history view
// and for offline review of demo sessions.
type AnalysisRecord struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Domain      string    `json:"domain,omitempty"`
	Score       float64   `json:"score"`
	Category    string    `json:"category"`
	Sector      string    `json:"sector"`
	Confidence  float64   `json:"confidence"`
	Cached      bool      `json:"cached"`
	LatencyMS   int       `json:"latency_ms"`
	Payload     string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportRecord tracks a generated PDF report.
type ReportRecord struct {
	ID          string    `json:"id"`
	AnalysisID  string    `json:"analysis_id"`
	CompanyName string    `json:"company_name"`
	SizeBytes   int       `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
