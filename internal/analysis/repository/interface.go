package repository

import (
	"context"
	"time"
)

// JobRepository keeps the small durable facts about a job that must survive
// process restarts: when it was first observed and which agents it runs.
//
//go:generate mockery --name JobRepository
type JobRepository interface {
	// EnsureStartedAt records now as the job's start time unless one is
	// already recorded, and returns the recorded value. Writes happen at
	// most once per job across concurrent callers.
	EnsureStartedAt(ctx context.Context, jobID string, now time.Time) (time.Time, error)

	SetAgents(ctx context.Context, jobID string, names []string) error
	GetAgents(ctx context.Context, jobID string) ([]string, error)

	// MarkCompleted flips the job's one-time completion flag. Returns true
	// for exactly one caller per job.
	MarkCompleted(ctx context.Context, jobID string) (bool, error)
}
