package usecase

import (
	"dealflow-srv/internal/preference"
	"dealflow-srv/internal/preference/repository"
	"dealflow-srv/pkg/enginesrv"
	"dealflow-srv/pkg/log"
)

type implUseCase struct {
	repo   repository.PostgresRepository // nil when no structured store is configured
	cache  repository.CacheRepository
	engine enginesrv.IEngine // nil in demo mode
	l      log.Logger
}

// New creates a new preference UseCase implementation. The store and engine
// are optional; the cache mirror is required.
func New(repo repository.PostgresRepository, cache repository.CacheRepository, engine enginesrv.IEngine, l log.Logger) preference.UseCase {
	return &implUseCase{
		repo:   repo,
		cache:  cache,
		engine: engine,
		l:      l,
	}
}
