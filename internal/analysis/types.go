package analysis

import (
	"encoding/json"
	"io"

	"dealflow-srv/internal/model"
)

// UploadFile is one document handed in with a job start.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// StartInput carries everything a new analysis job needs. Preferences is
// the raw client preference document, forwarded opaquely to the engine.
type StartInput struct {
	Files       []UploadFile
	Context     string
	Preferences json.RawMessage
}

// StartOutput acknowledges a started job. Errors lists documents that
// failed to upload; their failure never blocks the start.
type StartOutput struct {
	JobID  string
	Agents []model.AgentStatus
	Errors []model.UploadError
}
