package usecase

import (
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/dashboard/repository"
	"analytics-srv/internal/metric"
	"analytics-srv/internal/post"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/monitoring"
)

// DefaultRenderConcurrency caps how many widgets are evaluated at once.
const DefaultRenderConcurrency = 8

type implUseCase struct {
	repo     repository.PostgresRepository
	cache    repository.CacheRepository
	metricUC metric.UseCase
	postUC   post.UseCase
	engine   *aggregation.Engine
	metrics  *monitoring.Collector
	loc      *time.Location
	l        log.Logger
	now      func() time.Time
}

// New creates a new dashboard UseCase. cache and metrics may be nil.
// Renders are resolved in loc.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	metricUC metric.UseCase,
	postUC post.UseCase,
	engine *aggregation.Engine,
	metrics *monitoring.Collector,
	loc *time.Location,
	l log.Logger,
) dashboard.UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		repo:     repo,
		cache:    cache,
		metricUC: metricUC,
		postUC:   postUC,
		engine:   engine,
		metrics:  metrics,
		loc:      loc,
		l:        l,
		now:      time.Now,
	}
}
