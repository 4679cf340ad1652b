package repository

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Report, error)
	Detail(ctx context.Context, id string) (model.Report, error)
	List(ctx context.Context, opts ListOptions) ([]model.Report, error)
	Count(ctx context.Context, opts FilterOptions) (int64, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Report, error)
	Delete(ctx context.Context, id string) error

	// ListDue returns scheduled reports whose next run is at or before Now.
	ListDue(ctx context.Context, opts ListDueOptions) ([]model.Report, error)
	// AdvanceNextRun moves next_run_at from Previous to Next. It reports
	// false when another writer already moved it.
	AdvanceNextRun(ctx context.Context, opts AdvanceNextRunOptions) (bool, error)
}

//go:generate mockery --name RunRepository
type RunRepository interface {
	CreateRun(ctx context.Context, opts CreateRunOptions) (model.ReportRun, error)
	DetailRun(ctx context.Context, id string) (model.ReportRun, error)
	// FindRunByParamsHash returns the newest matching run, or nil.
	FindRunByParamsHash(ctx context.Context, opts FindRunByParamsHashOptions) (*model.ReportRun, error)
	ListRuns(ctx context.Context, opts ListRunsOptions) ([]model.ReportRun, error)
	CountRuns(ctx context.Context, reportID string) (int64, error)
	UpdateRunCompleted(ctx context.Context, opts UpdateRunCompletedOptions) error
	UpdateRunFailed(ctx context.Context, opts UpdateRunFailedOptions) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
	RunRepository
}
