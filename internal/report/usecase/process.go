package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/internal/report"
	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/email"
	"analytics-srv/pkg/minio"
)

// ProcessJob renders a queued run. Runs that already finished are skipped
// so redelivered jobs are harmless. Any failure marks the run FAILED.
func (uc *implUseCase) ProcessJob(ctx context.Context, job report.Job) error {
	started := time.Now()

	run, err := uc.repo.DetailRun(ctx, job.RunID)
	if err != nil {
		return uc.mapRepoError(ctx, "ProcessJob", err)
	}
	if run.Status != model.RunStatusProcessing {
		uc.l.Infof(ctx, "report.usecase.ProcessJob: Run %s is already %s, skipping", run.ID, run.Status)
		return nil
	}

	now := job.Now
	if now.IsZero() {
		now = run.RunAt
	}
	now = now.In(uc.config.Location)

	r, doc, files, err := uc.generate(ctx, run, now)
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ProcessJob: Run %s failed: %v", run.ID, err)
		uc.failRun(ctx, run.ID, err.Error(), elapsed)
		return err
	}

	err = uc.repo.UpdateRunCompleted(ctx, repository.UpdateRunCompletedOptions{
		RunID:            run.ID,
		Files:            files,
		WidgetsCount:     len(doc.Sections),
		GenerationTimeMs: elapsed,
		CompletedAt:      uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ProcessJob: Failed to update completed status: %v", err)
		return err
	}
	uc.metrics.IncReportRun(model.RunStatusCompleted)
	uc.l.Infof(ctx, "report.usecase.ProcessJob: Run %s of report %s completed in %dms", run.ID, r.ID, elapsed)

	if run.Trigger == model.RunTriggerScheduled {
		uc.notify(ctx, r, run, doc)
	}
	return nil
}

func (uc *implUseCase) generate(ctx context.Context, run model.ReportRun, now time.Time) (model.Report, report.Document, []model.ReportFile, error) {
	r, err := uc.repo.Detail(ctx, run.ReportID)
	if err != nil {
		return model.Report{}, report.Document{}, nil, fmt.Errorf("load report: %w", uc.mapRepoError(ctx, "generate", err))
	}

	doc, err := uc.evaluate(ctx, r, run.ID, now)
	if err != nil {
		return model.Report{}, report.Document{}, nil, fmt.Errorf("evaluate: %w", err)
	}

	formats := r.Formats
	if len(formats) == 0 {
		formats = []model.ReportFormat{model.ReportFormatCSV}
	}

	files := make([]model.ReportFile, 0, len(formats))
	for _, f := range formats {
		data, err := renderDocument(doc, f)
		if err != nil {
			return model.Report{}, report.Document{}, nil, fmt.Errorf("render %s: %w", f, err)
		}

		key := fmt.Sprintf("reports/%s/%s.%s", r.ID, run.ID, f)
		_, err = uc.storage.UploadFile(ctx, &minio.UploadRequest{
			BucketName:  uc.config.Bucket,
			ObjectName:  key,
			FileName:    fmt.Sprintf("report_%s.%s", run.ID, f),
			Reader:      bytes.NewReader(data),
			Size:        int64(len(data)),
			ContentType: f.ContentType(),
			Metadata: map[string]string{
				"report_id": r.ID,
				"run_id":    run.ID,
				"format":    string(f),
			},
		})
		if err != nil {
			return model.Report{}, report.Document{}, nil, fmt.Errorf("upload %s: %w", f, err)
		}
		files = append(files, model.ReportFile{Format: f, ObjectKey: key, SizeBytes: int64(len(data))})
	}
	return r, doc, files, nil
}

// evaluate computes every widget over the report period at now. Posts are
// loaded once for all metrics; metrics that no longer exist are reported
// per value instead of failing the run.
func (uc *implUseCase) evaluate(ctx context.Context, r model.Report, runID string, now time.Time) (report.Document, error) {
	iv := aggregation.ResolveTimeRange(r.TimeRange, nil, now)
	doc := report.Document{
		ReportID:    r.ID,
		RunID:       runID,
		Name:        r.Name,
		Description: r.Description,
		TimeRange:   r.TimeRange,
		Start:       iv.Start,
		End:         iv.End,
		Fallback:    iv.Fallback,
		GeneratedAt: uc.now().In(uc.config.Location),
		Sections:    make([]report.DocumentSection, 0, len(r.Widgets)),
	}

	byID := map[string]model.MetricMapping{}
	var sourceIDs []string
	if ids := metricIDs(r.Widgets); len(ids) > 0 {
		mappings, err := uc.metricUC.ListByIDs(ctx, ids)
		if err != nil {
			return report.Document{}, err
		}
		seen := map[string]struct{}{}
		for _, m := range mappings {
			byID[m.ID] = m
			for _, id := range m.SourceIDs() {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				sourceIDs = append(sourceIDs, id)
			}
		}
	}

	var posts []model.Post
	if len(sourceIDs) > 0 {
		from, to := aggregation.Span(iv)
		var err error
		posts, err = uc.postUC.ListForEvaluation(ctx, post.EvaluationInput{SourceIDs: sourceIDs, From: from, To: to})
		if err != nil {
			return report.Document{}, err
		}
	}

	for _, w := range r.Widgets {
		section := report.DocumentSection{
			WidgetID: w.ID,
			Type:     w.Type,
			Title:    w.Title,
			Values:   []report.DocumentValue{},
		}
		for _, id := range w.MetricRefs() {
			m, ok := byID[id]
			if !ok {
				section.Values = append(section.Values, report.DocumentValue{MetricID: id, Error: report.ErrMetricNotFound.Error()})
				continue
			}
			res := uc.engine.Evaluate(ctx, aggregation.Input{
				Mapping:   m,
				Posts:     posts,
				TimeRange: r.TimeRange,
				Now:       now,
			})
			v := res.Value
			section.Values = append(section.Values, report.DocumentValue{MetricID: id, MetricName: m.Name, Value: &v})
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc, nil
}

// notify publishes one email per schedule recipient. Failures are logged.
func (uc *implUseCase) notify(ctx context.Context, r model.Report, run model.ReportRun, doc report.Document) {
	if r.Schedule == nil || len(r.Schedule.Recipients) == 0 {
		return
	}

	formats := make([]string, 0, len(r.Formats))
	for _, f := range r.Formats {
		formats = append(formats, string(f))
	}
	data := email.ReportReady{
		ReportName:   r.Name,
		Description:  r.Description,
		PeriodStart:  doc.Start.Format(time.DateOnly),
		PeriodEnd:    doc.End.Format(time.DateOnly),
		GeneratedAt:  doc.GeneratedAt.Format("2006-01-02 15:04 MST"),
		Formats:      formats,
		RunID:        run.ID,
		DownloadPath: fmt.Sprintf("/api/v1/reports/runs/%s/download", run.ID),
	}

	for _, rcpt := range r.Schedule.Recipients {
		e, err := email.NewEmail(email.EmailMeta{Recipient: rcpt, TemplateType: email.ReportReadyTemplate}, data)
		if err != nil {
			uc.l.Warnf(ctx, "report.usecase.notify: Failed to build email for run %s: %v", run.ID, err)
			continue
		}
		if err := uc.producer.PublishNotification(ctx, report.Notification{
			RunID:     run.ID,
			ReportID:  r.ID,
			Recipient: e.Recipient,
			Subject:   e.Subject,
			Body:      e.Body,
		}); err != nil {
			uc.l.Warnf(ctx, "report.usecase.notify: Failed to publish notification for run %s: %v", run.ID, err)
		}
	}
}

func (uc *implUseCase) failRun(ctx context.Context, runID, msg string, elapsedMs int64) {
	err := uc.repo.UpdateRunFailed(ctx, repository.UpdateRunFailedOptions{
		RunID:            runID,
		ErrorMessage:     msg,
		GenerationTimeMs: elapsedMs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.failRun: Failed to mark run %s failed: %v", runID, err)
	}
	uc.metrics.IncReportRun(model.RunStatusFailed)
}
