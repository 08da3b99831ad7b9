package usecase

import (
	"dealflow-srv/internal/result"
	"dealflow-srv/internal/result/repository"
	"dealflow-srv/pkg/enginesrv"
	"dealflow-srv/pkg/log"
)

type implUseCase struct {
	repo   repository.PostgresRepository // nil when no structured store is configured
	engine enginesrv.IEngine             // nil in demo mode
	l      log.Logger
}

// New creates a new result UseCase implementation. Both collaborators are
// optional; with neither the usecase serves the bundled demo fixture.
func New(repo repository.PostgresRepository, engine enginesrv.IEngine, l log.Logger) result.UseCase {
	return &implUseCase{
		repo:   repo,
		engine: engine,
		l:      l,
	}
}
