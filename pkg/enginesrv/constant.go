package enginesrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the analysis engine.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second
)

// API path segments (for reference; full URLs built in enginesrv.go).
const (
	PathStart    = "/start"
	PathStatus   = "/status"
	PathResults  = "/results"
	PathReport   = "/report"
	PathSettings = "/settings"
)
