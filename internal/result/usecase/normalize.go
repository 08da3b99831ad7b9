package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dealflow-srv/internal/model"
)

// Canonical scores for the string-typed grade enum found in older payloads.
const (
	scoreStrong  = 0.85
	scoreAverage = 0.60
	scoreWeak    = 0.35
)

// rawResults mirrors the engine payload as loosely as it arrives. Older
// payloads write "Deep_dive"; encoding/json matches field names
// case-insensitively so one field covers both spellings.
type rawResults struct {
	MainKPI     *rawKPI       `json:"mainKpi"`
	Insights    []rawInsight  `json:"insights"`
	FlagSummary []rawFlags    `json:"flag_summary"`
	DeepDive    []rawDeepDive `json:"deep_dive"`
	ReportURL   string        `json:"reportUrl"`
}

type rawKPI struct {
	Label            string      `json:"label"`
	Value            interface{} `json:"value"`
	Context          string      `json:"context"`
	ExecutiveSummary string      `json:"executive_summary"`
}

type rawInsight struct {
	Title   string      `json:"title"`
	Summary string      `json:"summary"`
	Score   interface{} `json:"score"`
}

type rawFlags struct {
	GreenFlags []string `json:"green_flags"`
	RedFlags   []string `json:"red_flags"`
}

type rawDeepDive struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// normalizeResults is the single canonicalization pass at the system
// boundary: every result payload, whatever its vintage, comes through here
// before anything downstream reads it. Unparseable payloads normalize to an
// empty Results rather than an error.
func normalizeResults(data json.RawMessage) model.Results {
	var raw rawResults
	if len(data) > 0 {
		_ = json.Unmarshal(data, &raw)
	}

	out := model.Results{
		Insights:  make([]model.Insight, 0, len(raw.Insights)),
		ReportURL: raw.ReportURL,
	}

	if raw.MainKPI != nil {
		out.MainKPI = model.KPI{
			Label:            raw.MainKPI.Label,
			Value:            stringifyValue(raw.MainKPI.Value),
			Context:          raw.MainKPI.Context,
			ExecutiveSummary: raw.MainKPI.ExecutiveSummary,
		}
	}

	for _, in := range raw.Insights {
		score, display := normalizeScore(in.Score)
		out.Insights = append(out.Insights, model.Insight{
			Title:        in.Title,
			Summary:      in.Summary,
			Score:        score,
			ScoreDisplay: display,
		})
	}

	for _, fs := range raw.FlagSummary {
		out.GreenFlags = append(out.GreenFlags, fs.GreenFlags...)
		out.RedFlags = append(out.RedFlags, fs.RedFlags...)
	}

	for _, dd := range raw.DeepDive {
		out.DeepDive = append(out.DeepDive, model.DeepDiveItem{
			Title:   dd.Title,
			Summary: dd.Summary,
		})
	}

	return out
}

// normalizeScore maps the three score shapes seen in the wild to a canonical
// [0,1] float and a display string: grade enums ("strong"), percentage
// strings ("75%"), bare floats in [0,1]. Anything else counts as missing.
func normalizeScore(v interface{}) (*float64, string) {
	switch s := v.(type) {
	case string:
		return normalizeScoreString(s)
	case float64:
		if s < 0 || s > 1 {
			return nil, "--"
		}
		return ptr(s), fmt.Sprintf("%d%%", int(math.Round(s*100)))
	default:
		return nil, "--"
	}
}

func normalizeScoreString(s string) (*float64, string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strong":
		return ptr(scoreStrong), "Strong"
	case "average":
		return ptr(scoreAverage), "Average"
	case "weak":
		return ptr(scoreWeak), "Weak"
	}

	trimmed := strings.TrimSpace(s)
	if strings.HasSuffix(trimmed, "%") {
		if pct, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "%"), 64); err == nil && pct >= 0 && pct <= 100 {
			return ptr(pct / 100), fmt.Sprintf("%d%%", int(math.Round(pct)))
		}
	}

	return nil, "--"
}

func stringifyValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

func ptr(f float64) *float64 {
	return &f
}
