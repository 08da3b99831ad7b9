package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"
)

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, nethttp.MethodGet, url, nil, headers)
}

// Post performs a POST request with a JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
	}
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Content-Type"] = "application/json"
	return c.do(ctx, nethttp.MethodPost, url, jsonBody, headers)
}

// do runs the request, retrying on transport errors and 5xx responses.
// The request is rebuilt per attempt so the body can be replayed.
func (c *clientImpl) do(ctx context.Context, method, url string, body []byte, headers map[string]string) ([]byte, int, error) {
	var resp *nethttp.Response
	var err error

	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		var bodyReader io.Reader
		if body != nil {
			bodyReader = bytes.NewReader(body)
		}

		var req *nethttp.Request
		req, err = nethttp.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create request: %w", err)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err = c.client.Do(req)
		if err == nil && resp.StatusCode < nethttp.StatusInternalServerError {
			break
		}
		if attempt == c.config.Retries {
			break
		}
		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
		select {
		case <-time.After(c.config.RetryWait):
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return respBody, resp.StatusCode, nil
}
