package http

import (
	"dealflow-srv/internal/model"
	"dealflow-srv/pkg/util"
)

type getResultReq struct {
	ID string
}

type kpiResp struct {
	Label            string `json:"label"`
	Value            string `json:"value"`
	Context          string `json:"context,omitempty"`
	ExecutiveSummary string `json:"executive_summary,omitempty"`
}

type insightResp struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Score        *float64 `json:"score,omitempty"`
	ScoreDisplay string   `json:"score_display"`
}

type deepDiveResp struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type resultResp struct {
	MainKPI    kpiResp        `json:"main_kpi"`
	Insights   []insightResp  `json:"insights"`
	GreenFlags []string       `json:"green_flags"`
	RedFlags   []string       `json:"red_flags"`
	DeepDive   []deepDiveResp `json:"deep_dive"`
	ReportURL  string         `json:"report_url,omitempty"`
}

func (h *handler) newResultResp(o model.Results) resultResp {
	resp := resultResp{
		MainKPI: kpiResp{
			Label:            o.MainKPI.Label,
			Value:            o.MainKPI.Value,
			Context:          o.MainKPI.Context,
			ExecutiveSummary: o.MainKPI.ExecutiveSummary,
		},
		Insights:   make([]insightResp, 0, len(o.Insights)),
		GreenFlags: o.GreenFlags,
		RedFlags:   o.RedFlags,
		DeepDive:   make([]deepDiveResp, 0, len(o.DeepDive)),
		ReportURL:  o.ReportURL,
	}

	for _, in := range o.Insights {
		resp.Insights = append(resp.Insights, insightResp{
			Title:        in.Title,
			Summary:      in.Summary,
			Score:        in.Score,
			ScoreDisplay: in.ScoreDisplay,
		})
	}
	for _, dd := range o.DeepDive {
		resp.DeepDive = append(resp.DeepDive, deepDiveResp{
			Title:   dd.Title,
			Summary: dd.Summary,
		})
	}

	return resp
}

type reportMetaResp struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	ReportID  string `json:"report_id,omitempty"`
}

func (h *handler) newListReportsResp(metas []model.ReportMeta) []reportMetaResp {
	resp := make([]reportMetaResp, 0, len(metas))
	for _, m := range metas {
		resp = append(resp, reportMetaResp{
			ID:        m.ID,
			CreatedAt: util.DateTimeToStr(m.CreatedAt),
			ReportID:  m.ReportID,
		})
	}
	return resp
}
