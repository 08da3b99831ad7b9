package http

import (
	"dealflow-srv/internal/model"
)

type agentFlagsBody struct {
	MarketFit  bool `json:"marketFit"`
	Financials bool `json:"financials"`
	Tech       bool `json:"tech"`
	Legal      bool `json:"legal"`
}

type savePrefsReq struct {
	Language    string         `json:"language" binding:"required"`
	RiskProfile string         `json:"risk_profile" binding:"required"`
	Agents      agentFlagsBody `json:"agents"`
}

func (r savePrefsReq) toModel() model.Prefs {
	return model.Prefs{
		Language:    r.Language,
		RiskProfile: r.RiskProfile,
		Agents: model.AgentFlags{
			MarketFit:  r.Agents.MarketFit,
			Financials: r.Agents.Financials,
			Tech:       r.Agents.Tech,
			Legal:      r.Agents.Legal,
		},
	}
}

type prefsResp struct {
	Language    string         `json:"language"`
	RiskProfile string         `json:"risk_profile"`
	Agents      agentFlagsBody `json:"agents"`
}

func (h *handler) newPrefsResp(p model.Prefs) prefsResp {
	return prefsResp{
		Language:    p.Language,
		RiskProfile: p.RiskProfile,
		Agents: agentFlagsBody{
			MarketFit:  p.Agents.MarketFit,
			Financials: p.Agents.Financials,
			Tech:       p.Agents.Tech,
			Legal:      p.Agents.Legal,
		},
	}
}

type saveResp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
