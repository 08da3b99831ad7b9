package usecase

import (
	"context"
	"encoding/json"
	"time"
)

type completionEvent struct {
	JobID  string    `json:"job_id"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// publishCompletion emits the job's completion event exactly once. The
// durable completed flag arbitrates between concurrent observers, so demo
// status polls and engine watchers cannot double-publish.
func (uc *implUseCase) publishCompletion(ctx context.Context, jobID string) {
	won, err := uc.jobs.MarkCompleted(ctx, jobID)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.publishCompletion: MarkCompleted failed: %v", err)
		return
	}
	if !won || uc.producer == nil {
		return
	}

	payload, err := json.Marshal(completionEvent{
		JobID:  jobID,
		Status: "completed",
		At:     time.Now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.publishCompletion: marshal event failed: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(jobID), payload); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.publishCompletion: publish failed: %v", err)
	}
}
