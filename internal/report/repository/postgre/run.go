package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report/repository"
)

func (r *implRepository) CreateRun(ctx context.Context, opts repository.CreateRunOptions) (model.ReportRun, error) {
	run, err := scanRun(r.db.QueryRowContext(ctx, insertRunQuery,
		opts.ID, opts.ReportID, opts.UserID, opts.Trigger, opts.ParamsHash, model.RunStatusProcessing,
		opts.RunAt, time.Now()))
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateRun: Failed to insert run: %v", err)
		return model.ReportRun{}, repository.ErrRunCreateFailed
	}
	return run, nil
}

func (r *implRepository) DetailRun(ctx context.Context, id string) (model.ReportRun, error) {
	run, err := scanRun(r.db.QueryRowContext(ctx, detailRunQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.ReportRun{}, repository.ErrRunNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.DetailRun: Failed to get run: %v", err)
		return model.ReportRun{}, err
	}
	return run, nil
}

func (r *implRepository) FindRunByParamsHash(ctx context.Context, opts repository.FindRunByParamsHashOptions) (*model.ReportRun, error) {
	run, err := scanRun(r.db.QueryRowContext(ctx, findRunByParamsHashQuery, opts.ParamsHash, opts.Status, opts.Since))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.FindRunByParamsHash: Failed to find run: %v", err)
		return nil, err
	}
	return &run, nil
}

func (r *implRepository) ListRuns(ctx context.Context, opts repository.ListRunsOptions) ([]model.ReportRun, error) {
	query, args := buildListRunsQuery(opts)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListRuns: Failed to query runs: %v", err)
		return nil, err
	}
	defer rows.Close()

	runs := make([]model.ReportRun, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListRuns: Failed to scan run: %v", err)
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListRuns: Failed to iterate runs: %v", err)
		return nil, err
	}
	return runs, nil
}

func (r *implRepository) CountRuns(ctx context.Context, reportID string) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countRunsQuery, reportID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CountRuns: Failed to count runs: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *implRepository) UpdateRunCompleted(ctx context.Context, opts repository.UpdateRunCompletedOptions) error {
	files := opts.Files
	if files == nil {
		files = []model.ReportFile{}
	}
	data, err := json.Marshal(files)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateRunCompleted: Failed to encode files: %v", err)
		return repository.ErrRunUpdateFailed
	}

	res, err := r.db.ExecContext(ctx, completeRunQuery,
		opts.RunID, model.RunStatusCompleted, data, opts.WidgetsCount, opts.GenerationTimeMs, opts.CompletedAt)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateRunCompleted: Failed to update run: %v", err)
		return repository.ErrRunUpdateFailed
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrRunNotFound
	}
	return nil
}

func (r *implRepository) UpdateRunFailed(ctx context.Context, opts repository.UpdateRunFailedOptions) error {
	res, err := r.db.ExecContext(ctx, failRunQuery,
		opts.RunID, model.RunStatusFailed, toNullString(opts.ErrorMessage), opts.GenerationTimeMs, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateRunFailed: Failed to update run: %v", err)
		return repository.ErrRunUpdateFailed
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrRunNotFound
	}
	return nil
}
