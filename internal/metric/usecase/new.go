package usecase

import (
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/metric"
	"analytics-srv/internal/metric/repository"
	"analytics-srv/internal/post"
	"analytics-srv/internal/source"
	"analytics-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	sourceUC source.UseCase
	postUC   post.UseCase
	engine   *aggregation.Engine
	cache    metric.CacheInvalidator
	loc      *time.Location
	l        log.Logger
	now      func() time.Time
}

// New creates a new metric UseCase. cache may be nil. Evaluations without an
// explicit now use the current time in loc.
func New(
	repo repository.PostgresRepository,
	sourceUC source.UseCase,
	postUC post.UseCase,
	engine *aggregation.Engine,
	cache metric.CacheInvalidator,
	loc *time.Location,
	l log.Logger,
) metric.UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		repo:     repo,
		sourceUC: sourceUC,
		postUC:   postUC,
		engine:   engine,
		cache:    cache,
		loc:      loc,
		l:        l,
		now:      time.Now,
	}
}
