package analysis

import "errors"

var (
	ErrEngineFailed = errors.New("analysis engine request failed")
	ErrNoJobID      = errors.New("job id is required")
)
