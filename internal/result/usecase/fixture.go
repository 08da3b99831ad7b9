package usecase

import (
	_ "embed"

	"dealflow-srv/internal/model"
)

// demoFixture is the bundled result shown when neither the structured store
// nor the analysis engine can produce anything.
//
//go:embed demo_results.json
var demoFixture []byte

func demoResults() model.Results {
	return normalizeResults(demoFixture)
}
