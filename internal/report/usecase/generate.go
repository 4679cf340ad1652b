package usecase

import (
	"context"
	"fmt"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/minio"
	"analytics-srv/pkg/paginator"

	"github.com/google/uuid"
)

// Generate queues a manual run. Flow: load report → hash params → reuse an
// in-progress run → create run → publish job.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.GenerateOutput, error) {
	r, err := uc.readableReport(ctx, sc, input.ReportID, "Generate")
	if err != nil {
		return report.GenerateOutput{}, err
	}

	run, existing, err := uc.enqueue(ctx, r, sc.UserID, model.RunTriggerManual, uc.resolveNow(input.Now))
	if err != nil {
		return report.GenerateOutput{}, err
	}
	return report.GenerateOutput{Run: run, Existing: existing}, nil
}

func (uc *implUseCase) GetRun(ctx context.Context, sc model.Scope, runID string) (model.ReportRun, error) {
	return uc.readableRun(ctx, sc, runID, "GetRun")
}

func (uc *implUseCase) ListRuns(ctx context.Context, sc model.Scope, input report.ListRunsInput) (report.ListRunsOutput, error) {
	input.Paginator.Adjust()

	if _, err := uc.readableReport(ctx, sc, input.ReportID, "ListRuns"); err != nil {
		return report.ListRunsOutput{}, err
	}

	total, err := uc.repo.CountRuns(ctx, input.ReportID)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListRuns: Failed to count runs: %v", err)
		return report.ListRunsOutput{}, err
	}

	runs, err := uc.repo.ListRuns(ctx, repository.ListRunsOptions{
		ReportID: input.ReportID,
		Limit:    input.Paginator.Limit,
		Offset:   input.Paginator.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListRuns: Failed to list runs: %v", err)
		return report.ListRunsOutput{}, err
	}

	return report.ListRunsOutput{
		Runs:      runs,
		Paginator: paginator.New(input.Paginator, total, int64(len(runs))),
	}, nil
}

// DownloadRun presigns a GET URL for one file of a completed run.
func (uc *implUseCase) DownloadRun(ctx context.Context, sc model.Scope, input report.DownloadInput) (report.DownloadOutput, error) {
	run, err := uc.readableRun(ctx, sc, input.RunID, "DownloadRun")
	if err != nil {
		return report.DownloadOutput{}, err
	}
	if run.Status != model.RunStatusCompleted {
		return report.DownloadOutput{}, report.ErrRunNotCompleted
	}

	var (
		file model.ReportFile
		ok   bool
	)
	if input.Format == "" {
		if len(run.Files) > 0 {
			file, ok = run.Files[0], true
		}
	} else {
		file, ok = run.File(input.Format)
	}
	if !ok {
		return report.DownloadOutput{}, report.ErrFormatNotAvailable
	}

	fileName := fmt.Sprintf("report_%s.%s", run.ID, file.Format)
	presigned, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.Bucket,
		ObjectName: file.ObjectKey,
		Expiry:     uc.config.DownloadExpiry,
		FileName:   fileName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.DownloadRun: Failed to generate presigned URL: %v", err)
		return report.DownloadOutput{}, report.ErrDownloadURLFailed
	}

	return report.DownloadOutput{
		URL:       presigned.URL,
		ExpiresAt: presigned.ExpiresAt,
		FileName:  fileName,
		Format:    file.Format,
		SizeBytes: file.SizeBytes,
	}, nil
}

// RunDue claims every due schedule slot by advancing next_run_at, then
// queues a run evaluated at the slot time. Slots claimed by another
// scheduler are skipped. Per-report failures are logged and skipped.
func (uc *implUseCase) RunDue(ctx context.Context, now time.Time) (int, error) {
	now = uc.resolveNow(now)

	due, err := uc.repo.ListDue(ctx, repository.ListDueOptions{Now: now, Limit: uc.config.DueBatch})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.RunDue: Failed to list due reports: %v", err)
		return 0, err
	}

	queued := 0
	for _, r := range due {
		if r.Schedule == nil || r.NextRunAt == nil {
			continue
		}
		slot := r.NextRunAt.In(uc.config.Location)
		next := report.NextRun(*r.Schedule, now)

		claimed, err := uc.repo.AdvanceNextRun(ctx, repository.AdvanceNextRunOptions{
			ID:       r.ID,
			Previous: *r.NextRunAt,
			Next:     &next,
		})
		if err != nil {
			uc.l.Warnf(ctx, "report.usecase.RunDue: Failed to advance report %s: %v", r.ID, err)
			continue
		}
		if !claimed {
			continue
		}

		_, existing, err := uc.enqueue(ctx, r, r.CreatedBy, model.RunTriggerScheduled, slot)
		if err != nil {
			uc.l.Warnf(ctx, "report.usecase.RunDue: Failed to queue report %s: %v", r.ID, err)
			continue
		}
		if !existing {
			queued++
		}
	}

	if queued > 0 {
		uc.l.Infof(ctx, "report.usecase.RunDue: Queued %d scheduled runs", queued)
	}
	return queued, nil
}

// enqueue returns the in-progress run with the same params if there is a
// fresh one, otherwise creates a run and publishes its job. A run whose job
// cannot be published is marked failed.
func (uc *implUseCase) enqueue(ctx context.Context, r model.Report, userID, trigger string, now time.Time) (model.ReportRun, bool, error) {
	hash, err := paramsHash(r, now)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.enqueue: Failed to generate params hash: %v", err)
		return model.ReportRun{}, false, report.ErrGenerationFailed
	}

	existing, err := uc.repo.FindRunByParamsHash(ctx, repository.FindRunByParamsHashOptions{
		ParamsHash: hash,
		Status:     model.RunStatusProcessing,
		Since:      uc.now().Add(-uc.config.StaleRunAfter),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.enqueue: Failed to check existing run: %v", err)
		return model.ReportRun{}, false, report.ErrGenerationFailed
	}
	if existing != nil {
		return *existing, true, nil
	}

	run, err := uc.repo.CreateRun(ctx, repository.CreateRunOptions{
		ID:         uuid.New().String(),
		ReportID:   r.ID,
		UserID:     userID,
		Trigger:    trigger,
		ParamsHash: hash,
		RunAt:      now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.enqueue: Failed to create run: %v", err)
		return model.ReportRun{}, false, report.ErrGenerationFailed
	}

	if err := uc.producer.PublishJob(ctx, report.Job{RunID: run.ID, ReportID: r.ID, Now: now}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.enqueue: Failed to publish job for run %s: %v", run.ID, err)
		uc.failRun(ctx, run.ID, fmt.Sprintf("enqueue failed: %v", err), 0)
		return model.ReportRun{}, false, report.ErrGenerationFailed
	}
	return run, false, nil
}
