package report

import (
	"context"
	"time"

	"analytics-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Report, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Report, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Report, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Generate queues a run of the report. An equivalent run still in
	// progress is returned instead of starting a new one.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	GetRun(ctx context.Context, sc model.Scope, runID string) (model.ReportRun, error)
	ListRuns(ctx context.Context, sc model.Scope, input ListRunsInput) (ListRunsOutput, error)
	DownloadRun(ctx context.Context, sc model.Scope, input DownloadInput) (DownloadOutput, error)

	// ProcessJob renders and uploads one queued run.
	ProcessJob(ctx context.Context, job Job) error
	// RunDue queues every scheduled report due at now and returns how many
	// runs were queued.
	RunDue(ctx context.Context, now time.Time) (int, error)
}

// Producer publishes report jobs and recipient notifications.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishJob(ctx context.Context, job Job) error
	PublishNotification(ctx context.Context, n Notification) error
}
