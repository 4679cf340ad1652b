package usecase

import (
	"analytics-srv/internal/post"
	"analytics-srv/internal/post/repository"
	"analytics-srv/internal/source"
	"analytics-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	sourceUC source.UseCase
	producer post.Producer
	l        log.Logger
}

// New creates a new post UseCase implementation. producer may be nil, in
// which case no change events are published.
func New(repo repository.PostgresRepository, sourceUC source.UseCase, producer post.Producer, l log.Logger) post.UseCase {
	return &implUseCase{
		repo:     repo,
		sourceUC: sourceUC,
		producer: producer,
		l:        l,
	}
}
