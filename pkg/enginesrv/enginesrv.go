package enginesrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkghttp "dealflow-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

// StartJob submits a new analysis job to the engine.
func (c *engineImpl) StartJob(ctx context.Context, req StartRequest) (*StartResponse, error) {
	url := c.baseURL + PathStart

	body, statusCode, err := c.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start job: %w", err)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var resp StartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal start response: %w", err)
	}

	return &resp, nil
}

// GetStatus retrieves the per-agent progress of a job.
func (c *engineImpl) GetStatus(ctx context.Context, jobID string) ([]AgentStatus, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, PathStatus, jobID)

	body, statusCode, err := c.httpClient.Get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get job status: %w", err)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var agents []AgentStatus
	if err := json.Unmarshal(body, &agents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status: %w", err)
	}

	return agents, nil
}

// GetResults retrieves a raw result payload by id. The payload shape varies
// across engine versions, so it travels back unparsed.
func (c *engineImpl) GetResults(ctx context.Context, id string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, PathResults, id)

	body, statusCode, err := c.httpClient.Get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	return json.RawMessage(body), nil
}

// SaveSettings persists a preference document on the engine side.
func (c *engineImpl) SaveSettings(ctx context.Context, doc json.RawMessage) error {
	url := c.baseURL + PathSettings

	_, statusCode, err := c.httpClient.Post(ctx, url, doc, nil)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", statusCode)
	}

	return nil
}

// ReportPDFURL returns the engine's PDF export URL for a job.
func (c *engineImpl) ReportPDFURL(jobID string) string {
	return fmt.Sprintf("%s%s/%s.pdf", c.baseURL, PathReport, jobID)
}
