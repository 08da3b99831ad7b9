package result

import "errors"

var (
	// ErrEngineFailed wraps a non-2xx answer from the configured analysis
	// engine. Unlike speculative store probes, a configured engine is
	// authoritative and its failures propagate.
	ErrEngineFailed = errors.New("analysis engine request failed")
)
