package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dealflow-srv/internal/analysis/repository"
	"dealflow-srv/pkg/log"
	pkgRedis "dealflow-srv/pkg/redis"
)

// jobTTL bounds how long job slots live. Demo jobs finish in seconds; a day
// comfortably covers reloads.
const jobTTL = 24 * time.Hour

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.JobRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}

func startedAtKey(jobID string) string { return "job:" + jobID + ":started_at" }
func agentsKey(jobID string) string    { return "job:" + jobID + ":agents" }
func completedKey(jobID string) string { return "job:" + jobID + ":completed" }

// EnsureStartedAt writes the start time only when no value exists yet, then
// reads back whichever value won. Concurrent callers converge on one time.
func (r *implRepository) EnsureStartedAt(ctx context.Context, jobID string, now time.Time) (time.Time, error) {
	key := startedAtKey(jobID)

	if _, err := r.redis.SetNX(ctx, key, now.UnixMilli(), jobTTL); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.EnsureStartedAt: SetNX failed: %v", err)
		return time.Time{}, err
	}

	raw, err := r.redis.Get(ctx, key)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.EnsureStartedAt: Get failed: %v", err)
		return time.Time{}, err
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt started_at slot for job %s: %w", jobID, err)
	}
	return time.UnixMilli(ms), nil
}

func (r *implRepository) SetAgents(ctx context.Context, jobID string, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to marshal agent names: %w", err)
	}

	if err := r.redis.Set(ctx, agentsKey(jobID), raw, jobTTL); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.SetAgents: Set failed: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) GetAgents(ctx context.Context, jobID string) ([]string, error) {
	raw, err := r.redis.Get(ctx, agentsKey(jobID))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return nil, repository.ErrJobNotFound
		}
		r.l.Errorf(ctx, "analysis.repository.redis.GetAgents: Get failed: %v", err)
		return nil, err
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("corrupt agents slot for job %s: %w", jobID, err)
	}
	return names, nil
}

func (r *implRepository) MarkCompleted(ctx context.Context, jobID string) (bool, error) {
	won, err := r.redis.SetNX(ctx, completedKey(jobID), 1, jobTTL)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.MarkCompleted: SetNX failed: %v", err)
		return false, err
	}
	return won, nil
}
