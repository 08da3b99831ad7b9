package enginesrv

import (
	"encoding/json"

	pkghttp "dealflow-srv/pkg/http"
)

// EngineConfig holds configuration for the analysis engine client.
type EngineConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// StartRequest carries everything the engine needs to begin an analysis.
// Documents have already been uploaded; only their storage paths travel.
type StartRequest struct {
	Context     string          `json:"context"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
	Documents   []string        `json:"documents"`
}

// StartResponse is the engine's acknowledgement of a new job.
type StartResponse struct {
	JobID  string        `json:"jobId"`
	Agents []AgentStatus `json:"agents"`
}

// AgentStatus is the engine's per-agent progress record.
type AgentStatus struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Progress  int    `json:"progress"`
	Note      string `json:"note,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// engineImpl implements IEngine.
type engineImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
