package usecase

import (
	"context"
	"math"
	"time"

	"dealflow-srv/internal/analysis/repository"
	"dealflow-srv/internal/model"
)

const (
	// agentStagger offsets each agent's start so they visibly begin in
	// sequence rather than all at once.
	agentStagger = 1200 * time.Millisecond
	// agentDuration is how long one simulated agent takes from start to done.
	agentDuration = 15000 * time.Millisecond

	noteComplete  = "Complete"
	noteAnalyzing = "Analyzing uploaded materials"
)

// simulator computes per-agent progress purely from elapsed time since the
// job was first observed. Repeated calls with non-decreasing now yield
// non-decreasing progress, and every agent terminates at Done/100.
type simulator struct {
	jobs repository.JobRepository
	now  func() time.Time
}

func newSimulator(jobs repository.JobRepository) *simulator {
	return &simulator{
		jobs: jobs,
		now:  time.Now,
	}
}

// status snapshots every agent at the current instant. The first call for a
// job records its start time in the durable per-job slot; later calls,
// including ones from other processes, reuse it.
func (s *simulator) status(ctx context.Context, jobID string, agentNames []string) ([]model.AgentStatus, error) {
	now := s.now()

	startedAt, err := s.jobs.EnsureStartedAt(ctx, jobID, now)
	if err != nil {
		return nil, err
	}

	elapsed := now.Sub(startedAt)
	out := make([]model.AgentStatus, 0, len(agentNames))
	for i, name := range agentNames {
		effective := elapsed - time.Duration(i)*agentStagger
		if effective < 0 {
			effective = 0
		}

		frac := float64(effective) / float64(agentDuration)
		if frac > 1 {
			frac = 1
		}
		progress := int(math.Round(frac * 100))

		st := model.AgentStatus{
			Name:      name,
			Progress:  progress,
			UpdatedAt: &now,
		}
		switch {
		case progress >= 100:
			st.Status = model.AgentDone
			st.Note = noteComplete
		case effective == 0:
			st.Status = model.AgentQueued
		default:
			st.Status = model.AgentRunning
			st.Note = noteAnalyzing
		}
		out = append(out, st)
	}

	return out, nil
}
