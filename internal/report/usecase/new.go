package usecase

import (
	"sync"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/report"
	"dealflow-srv/internal/result"
	"dealflow-srv/pkg/log"
)

// hydration is one detail fetch, started at most once per key. done closes
// when the fetch finishes, successfully or not.
type hydration struct {
	done chan struct{}
	res  model.Results
	err  error
}

type implUseCase struct {
	resultUC result.UseCase
	l        log.Logger

	mu    sync.Mutex
	cache map[string]*hydration
}

// New creates a new report search UseCase implementation.
func New(resultUC result.UseCase, l log.Logger) report.UseCase {
	return &implUseCase{
		resultUC: resultUC,
		l:        l,
		cache:    make(map[string]*hydration),
	}
}
