package model

// AgentFlags enables or disables individual analysis agents.
type AgentFlags struct {
	MarketFit  bool `json:"marketFit"`
	Financials bool `json:"financials"`
	Tech       bool `json:"tech"`
	Legal      bool `json:"legal"`
}

// Prefs is the client-facing preference shape: short codes for language
// (en|de|fr) and risk profile (low|medium|high), boolean agent flags.
type Prefs struct {
	Language    string     `json:"language"`
	RiskProfile string     `json:"risk_profile"`
	Agents      AgentFlags `json:"agents"`
}

// PreferenceDoc is the persisted wire shape: human-readable labels and
// snake_case agent keys. Conversion to and from Prefs is exact in both
// directions.
type PreferenceDoc struct {
	AnalysisAgents AnalysisAgents     `json:"analysis_agents"`
	General        GeneralPreferences `json:"general"`
}

// AnalysisAgents is the persisted form of AgentFlags.
type AnalysisAgents struct {
	MarketFit  bool `json:"market_fit"`
	Financials bool `json:"financials"`
	Tech       bool `json:"tech"`
	Legal      bool `json:"legal"`
}

// GeneralPreferences carries the persisted label-valued settings.
type GeneralPreferences struct {
	InterfaceLanguage string `json:"interface_language"`
	TargetRiskProfile string `json:"target_risk_profile"`
}

// DefaultPrefs is what a user sees before ever saving: the three core
// agents on, legal off, English interface, balanced risk.
func DefaultPrefs() Prefs {
	return Prefs{
		Language:    "en",
		RiskProfile: "medium",
		Agents: AgentFlags{
			MarketFit:  true,
			Financials: true,
			Tech:       true,
			Legal:      false,
		},
	}
}
