package http

import (
	"dealflow-srv/internal/analysis"
	"dealflow-srv/internal/model"
	"dealflow-srv/pkg/util"
)

type agentResp struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Progress  int    `json:"progress"`
	Note      string `json:"note,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type uploadErrResp struct {
	FileName string `json:"file_name"`
	Message  string `json:"message"`
}

type startResp struct {
	JobID  string          `json:"job_id"`
	Agents []agentResp     `json:"agents"`
	Errors []uploadErrResp `json:"errors,omitempty"`
}

type statusResp struct {
	Agents []agentResp `json:"agents"`
	Done   bool        `json:"done"`
}

type reportURLResp struct {
	URL string `json:"url"`
}

func newAgentResp(a model.AgentStatus) agentResp {
	resp := agentResp{
		Name:     a.Name,
		Status:   string(a.Status),
		Progress: a.Progress,
		Note:     a.Note,
	}
	if a.UpdatedAt != nil {
		resp.UpdatedAt = util.DateTimeToStr(*a.UpdatedAt)
	}
	return resp
}

func newAgentResps(agents []model.AgentStatus) []agentResp {
	out := make([]agentResp, 0, len(agents))
	for _, a := range agents {
		out = append(out, newAgentResp(a))
	}
	return out
}

func (h *handler) newStartResp(o analysis.StartOutput) startResp {
	resp := startResp{
		JobID:  o.JobID,
		Agents: newAgentResps(o.Agents),
	}
	for _, e := range o.Errors {
		resp.Errors = append(resp.Errors, uploadErrResp{FileName: e.FileName, Message: e.Message})
	}
	return resp
}

func (h *handler) newStatusResp(agents []model.AgentStatus) statusResp {
	return statusResp{
		Agents: newAgentResps(agents),
		Done:   model.Done(agents),
	}
}
