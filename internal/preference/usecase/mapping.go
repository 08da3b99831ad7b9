package usecase

import (
	"dealflow-srv/internal/model"
)

// The persisted document uses human-readable labels; clients use short
// codes. The two tables below are the single source for that mapping and
// must stay exact inverses of each other.
var (
	langToLabel = map[string]string{
		"en": "English (US)",
		"de": "German",
		"fr": "French",
	}
	labelToLang = invert(langToLabel)

	riskToLabel = map[string]string{
		"low":    "Low",
		"medium": "Balanced",
		"high":   "High",
	}
	labelToRisk = invert(riskToLabel)
)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// denormalize converts client prefs to the persisted document shape.
func denormalize(p model.Prefs) model.PreferenceDoc {
	language, ok := langToLabel[p.Language]
	if !ok {
		language = langToLabel[model.DefaultPrefs().Language]
	}
	risk, ok := riskToLabel[p.RiskProfile]
	if !ok {
		risk = riskToLabel[model.DefaultPrefs().RiskProfile]
	}

	return model.PreferenceDoc{
		AnalysisAgents: model.AnalysisAgents{
			MarketFit:  p.Agents.MarketFit,
			Financials: p.Agents.Financials,
			Tech:       p.Agents.Tech,
			Legal:      p.Agents.Legal,
		},
		General: model.GeneralPreferences{
			InterfaceLanguage: language,
			TargetRiskProfile: risk,
		},
	}
}

// normalize converts a persisted document back to client prefs. Unknown or
// missing labels fall back to the defaults.
func normalize(doc model.PreferenceDoc) model.Prefs {
	defaults := model.DefaultPrefs()

	language, ok := labelToLang[doc.General.InterfaceLanguage]
	if !ok {
		language = defaults.Language
	}
	risk, ok := labelToRisk[doc.General.TargetRiskProfile]
	if !ok {
		risk = defaults.RiskProfile
	}

	return model.Prefs{
		Language:    language,
		RiskProfile: risk,
		Agents: model.AgentFlags{
			MarketFit:  doc.AnalysisAgents.MarketFit,
			Financials: doc.AnalysisAgents.Financials,
			Tech:       doc.AnalysisAgents.Tech,
			Legal:      doc.AnalysisAgents.Legal,
		},
	}
}
