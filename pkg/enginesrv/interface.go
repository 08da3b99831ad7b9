package enginesrv

import (
	"context"
	"encoding/json"
)

// IEngine defines the interface for the analysis engine API client.
// Implementations are safe for concurrent use.
type IEngine interface {
	StartJob(ctx context.Context, req StartRequest) (*StartResponse, error)
	GetStatus(ctx context.Context, jobID string) ([]AgentStatus, error)
	GetResults(ctx context.Context, id string) (json.RawMessage, error)
	SaveSettings(ctx context.Context, doc json.RawMessage) error
	ReportPDFURL(jobID string) string
}

// New creates a new analysis engine client. Returns the interface.
func New(cfg EngineConfig) IEngine {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &engineImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
