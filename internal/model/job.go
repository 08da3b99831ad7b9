package model

import "time"

// AgentState is the lifecycle state of a single analysis agent.
type AgentState string

const (
	AgentIdle    AgentState = "Idle"
	AgentQueued  AgentState = "Queued"
	AgentRunning AgentState = "Running"
	AgentDone    AgentState = "Done"
	AgentError   AgentState = "Error"
)

// AgentStatus is one agent's progress snapshot within a job. Readings may
// briefly show Done before Progress reaches 100; consumers tolerate either
// ordering.
type AgentStatus struct {
	Name      string     `json:"name"`
	Status    AgentState `json:"status"`
	Progress  int        `json:"progress"` // 0..100
	Note      string     `json:"note,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Job identifies a running analysis. JobID is server-issued when an upstream
// backend is configured, otherwise a locally generated base-36 token.
type Job struct {
	JobID     string    `json:"jobId"`
	StartedAt time.Time `json:"startedAt"`
}

// UploadError records a single document that failed to upload. Upload
// failures never block job start.
type UploadError struct {
	FileName string `json:"file_name"`
	Message  string `json:"message"`
}

// Done reports whether every agent has finished.
func Done(agents []AgentStatus) bool {
	if len(agents) == 0 {
		return false
	}
	for _, a := range agents {
		if a.Status != AgentDone && a.Progress < 100 {
			return false
		}
	}
	return true
}
