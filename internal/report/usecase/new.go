package usecase

import (
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/metric"
	"analytics-srv/internal/post"
	"analytics-srv/internal/report"
	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/minio"
	"analytics-srv/pkg/monitoring"
)

const (
	defaultReportBucket   = "analytics-reports"
	defaultDownloadExpiry = 15 * time.Minute
	// An in-progress run older than this no longer blocks a new one.
	defaultStaleRunAfter = 30 * time.Minute
	defaultDueBatch      = 100
)

// Config holds configuration for report generation.
type Config struct {
	Bucket         string
	DownloadExpiry time.Duration
	StaleRunAfter  time.Duration
	DueBatch       int
	// Location is where report periods and schedules are resolved.
	Location *time.Location
}

type implUseCase struct {
	repo     repository.PostgresRepository
	producer report.Producer
	storage  minio.MinIO
	metricUC metric.UseCase
	postUC   post.UseCase
	engine   *aggregation.Engine
	metrics  *monitoring.Collector
	l        log.Logger
	config   Config
	now      func() time.Time
}

// New creates a new report UseCase. metrics may be nil.
func New(
	repo repository.PostgresRepository,
	producer report.Producer,
	storage minio.MinIO,
	metricUC metric.UseCase,
	postUC post.UseCase,
	engine *aggregation.Engine,
	metrics *monitoring.Collector,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.Bucket == "" {
		cfg.Bucket = defaultReportBucket
	}
	if cfg.DownloadExpiry <= 0 {
		cfg.DownloadExpiry = defaultDownloadExpiry
	}
	if cfg.StaleRunAfter <= 0 {
		cfg.StaleRunAfter = defaultStaleRunAfter
	}
	if cfg.DueBatch <= 0 {
		cfg.DueBatch = defaultDueBatch
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &implUseCase{
		repo:     repo,
		producer: producer,
		storage:  storage,
		metricUC: metricUC,
		postUC:   postUC,
		engine:   engine,
		metrics:  metrics,
		l:        l,
		config:   cfg,
		now:      time.Now,
	}
}
