package mandate

import "errors"

var (
	ErrInvalidDocument = errors.New("mandate document must be valid JSON")
	ErrStoreFailed     = errors.New("mandate store unavailable")
)
