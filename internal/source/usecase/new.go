package usecase

import (
	"analytics-srv/internal/source"
	"analytics-srv/internal/source/repository"
	"analytics-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New creates a new source UseCase implementation.
func New(repo repository.PostgresRepository, l log.Logger) source.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
