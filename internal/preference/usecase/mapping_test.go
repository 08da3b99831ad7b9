package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"dealflow-srv/internal/model"
)

func TestMappingRoundTripFullDomain(t *testing.T) {
	languages := []string{"en", "de", "fr"}
	risks := []string{"low", "medium", "high"}

	// 3 languages x 3 risk profiles x 16 agent flag combinations.
	for _, lang := range languages {
		for _, risk := range risks {
			for mask := 0; mask < 16; mask++ {
				p := model.Prefs{
					Language:    lang,
					RiskProfile: risk,
					Agents: model.AgentFlags{
						MarketFit:  mask&1 != 0,
						Financials: mask&2 != 0,
						Tech:       mask&4 != 0,
						Legal:      mask&8 != 0,
					},
				}
				name := fmt.Sprintf("%s_%s_%04b", lang, risk, mask)
				t.Run(name, func(t *testing.T) {
					assert.Equal(t, p, normalize(denormalize(p)))
				})
			}
		}
	}
}

func TestDenormalizeLabels(t *testing.T) {
	doc := denormalize(model.Prefs{Language: "de", RiskProfile: "medium"})
	assert.Equal(t, "German", doc.General.InterfaceLanguage)
	assert.Equal(t, "Balanced", doc.General.TargetRiskProfile)
}

func TestNormalizeUnknownLabelsFallBackToDefaults(t *testing.T) {
	p := normalize(model.PreferenceDoc{
		General: model.GeneralPreferences{
			InterfaceLanguage: "Klingon",
			TargetRiskProfile: "YOLO",
		},
	})
	assert.Equal(t, "en", p.Language)
	assert.Equal(t, "medium", p.RiskProfile)
}

func TestDenormalizeUnknownCodesFallBackToDefaults(t *testing.T) {
	doc := denormalize(model.Prefs{Language: "xx", RiskProfile: "zz"})
	assert.Equal(t, "English (US)", doc.General.InterfaceLanguage)
	assert.Equal(t, "Balanced", doc.General.TargetRiskProfile)
}
