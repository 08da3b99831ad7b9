package usecase

import (
	"dealflow-srv/internal/mandate"
	"dealflow-srv/internal/mandate/repository"
	"dealflow-srv/pkg/log"
)

type implUseCase struct {
	repo repository.MandateRepository
	l    log.Logger
}

// New creates a new mandate UseCase implementation.
func New(repo repository.MandateRepository, l log.Logger) mandate.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
