package model

import (
	"encoding/json"
	"time"
)

// ResultRow is one stored analysis result as persisted: the raw payload
// plus addressing columns. Data stays opaque until canonicalized.
type ResultRow struct {
	ID        int64
	CreatedAt time.Time
	ReportID  string
	Data      json.RawMessage
}

// ReportMeta identifies a stored analysis result without its payload.
type ReportMeta struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ReportID  string    `json:"report_id,omitempty"`
}

// KPI is the headline metric of an analysis result.
type KPI struct {
	Label            string `json:"label"`
	Value            string `json:"value"`
	Context          string `json:"context,omitempty"`
	ExecutiveSummary string `json:"executive_summary,omitempty"`
}

// Insight is a single analysis finding. Score is canonical [0,1]; nil when
// the source payload carried none. ScoreDisplay is the render-ready string
// ("Strong", "42%", "--").
type Insight struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Score        *float64 `json:"score,omitempty"`
	ScoreDisplay string   `json:"score_display"`
}

// DeepDiveItem is one section of the detailed analysis write-up.
type DeepDiveItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Results is the normalized analysis payload. It is produced by one
// canonicalization pass at the system boundary; nothing downstream branches
// on raw external shape.
type Results struct {
	MainKPI    KPI            `json:"main_kpi"`
	Insights   []Insight      `json:"insights"`
	GreenFlags []string       `json:"green_flags"`
	RedFlags   []string       `json:"red_flags"`
	DeepDive   []DeepDiveItem `json:"deep_dive"`
	ReportURL  string         `json:"report_url,omitempty"`
}
