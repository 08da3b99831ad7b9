package usecase

import (
	"context"
	"time"

	"dealflow-srv/internal/model"
)

const watchInterval = 1500 * time.Millisecond

// watcherHandle identifies one watcher goroutine's registration, so a
// finished watcher can release only its own map entry and never a
// replacement registered under the same job.
type watcherHandle struct {
	cancel context.CancelFunc
}

// startWatcher polls the engine for a job until every agent is done, then
// publishes the completion event and stops. Restarting a watcher for the
// same job cancels the previous one.
func (uc *implUseCase) startWatcher(jobID string) {
	if uc.engine == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &watcherHandle{cancel: cancel}

	uc.watcherMu.Lock()
	if prev, ok := uc.watchers[jobID]; ok {
		prev.cancel()
	}
	uc.watchers[jobID] = h
	uc.watcherMu.Unlock()

	go uc.watch(ctx, jobID, h)
}

func (uc *implUseCase) watch(ctx context.Context, jobID string, h *watcherHandle) {
	defer uc.releaseWatcher(jobID, h)

	ticker := time.NewTicker(uc.watchEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			engineAgents, err := uc.engine.GetStatus(ctx, jobID)
			if err != nil {
				uc.l.Warnf(ctx, "analysis.usecase.watch: GetStatus failed: %v", err)
				continue
			}

			if model.Done(fromEngineAgents(engineAgents)) {
				uc.publishCompletion(ctx, jobID)
				return
			}
		}
	}
}

// releaseWatcher cancels h and drops its registration, but only while h is
// still the registered watcher for the job.
func (uc *implUseCase) releaseWatcher(jobID string, h *watcherHandle) {
	uc.watcherMu.Lock()
	defer uc.watcherMu.Unlock()

	h.cancel()
	if cur, ok := uc.watchers[jobID]; ok && cur == h {
		delete(uc.watchers, jobID)
	}
}
