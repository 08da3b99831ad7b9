package http

import (
	"fmt"

	"dealflow-srv/internal/report"
	"dealflow-srv/pkg/util"
)

type searchReportsReq struct {
	Query string `json:"query"`
	From  string `json:"from,omitempty"` // YYYY-MM-DD
	To    string `json:"to,omitempty"`   // YYYY-MM-DD
}

func (r searchReportsReq) toInput() (report.SearchInput, error) {
	input := report.SearchInput{Query: r.Query}

	if r.From != "" {
		from, err := util.StrToDate(r.From)
		if err != nil {
			return input, fmt.Errorf("%w: from: %v", report.ErrInvalidDate, err)
		}
		input.From = &from
	}
	if r.To != "" {
		to, err := util.StrToDate(r.To)
		if err != nil {
			return input, fmt.Errorf("%w: to: %v", report.ErrInvalidDate, err)
		}
		input.To = &to
	}

	return input, nil
}

type searchReportMetaResp struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	ReportID  string `json:"report_id,omitempty"`
}

type searchReportsResp struct {
	Reports []searchReportMetaResp `json:"reports"`
	Pending []string               `json:"pending"`
}

func (h *handler) newSearchReportsResp(o report.SearchOutput) searchReportsResp {
	resp := searchReportsResp{
		Reports: make([]searchReportMetaResp, 0, len(o.Reports)),
		Pending: o.Pending,
	}
	for _, m := range o.Reports {
		resp.Reports = append(resp.Reports, searchReportMetaResp{
			ID:        m.ID,
			CreatedAt: util.DateTimeToStr(m.CreatedAt),
			ReportID:  m.ReportID,
		})
	}
	return resp
}
