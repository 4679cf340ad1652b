package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report/repository"

	"github.com/aarondl/null/v8"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Report, error) {
	v, err := buildReportValues(opts.Widgets, opts.Formats, opts.Schedule)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Create: Failed to encode report: %v", err)
		return model.Report{}, repository.ErrReportCreateFailed
	}

	rpt, err := scanReport(r.db.QueryRowContext(ctx, insertReportQuery,
		opts.ID, opts.Name, toNullString(opts.Description), v.widgets, opts.TimeRange, v.formats,
		v.schedule, null.TimeFromPtr(opts.NextRunAt), opts.CreatedBy, time.Now()))
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Create: Failed to insert report: %v", err)
		return model.Report{}, repository.ErrReportCreateFailed
	}
	return rpt, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Report, error) {
	rpt, err := scanReport(r.db.QueryRowContext(ctx, detailReportQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Report{}, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Detail: Failed to get report: %v", err)
		return model.Report{}, err
	}
	return rpt, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Report, error) {
	query, args := buildListQuery(opts)
	return r.queryReports(ctx, "List", query, args...)
}

func (r *implRepository) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	query, args := buildCountQuery(opts)
	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Count: Failed to count reports: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Report, error) {
	v, err := buildReportValues(opts.Widgets, opts.Formats, opts.Schedule)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Update: Failed to encode report: %v", err)
		return model.Report{}, repository.ErrReportUpdateFailed
	}

	rpt, err := scanReport(r.db.QueryRowContext(ctx, updateReportQuery,
		opts.ID, opts.Name, toNullString(opts.Description), v.widgets, opts.TimeRange, v.formats,
		v.schedule, null.TimeFromPtr(opts.NextRunAt), time.Now()))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Report{}, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Update: Failed to update report: %v", err)
		return model.Report{}, repository.ErrReportUpdateFailed
	}
	return rpt, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteReportQuery, id, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Delete: Failed to delete report: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrReportNotFound
	}
	return nil
}

func (r *implRepository) ListDue(ctx context.Context, opts repository.ListDueOptions) ([]model.Report, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	return r.queryReports(ctx, "ListDue", listDueReportsQuery, opts.Now, limit)
}

func (r *implRepository) AdvanceNextRun(ctx context.Context, opts repository.AdvanceNextRunOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx, advanceNextRunQuery, opts.ID, opts.Previous, null.TimeFromPtr(opts.Next))
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.AdvanceNextRun: Failed to advance next run: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.AdvanceNextRun: Failed to read affected rows: %v", err)
		return false, err
	}
	return n > 0, nil
}

func (r *implRepository) queryReports(ctx context.Context, op, query string, args ...any) ([]model.Report, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.%s: Failed to query reports: %v", op, err)
		return nil, err
	}
	defer rows.Close()

	reports := make([]model.Report, 0)
	for rows.Next() {
		rpt, err := scanReport(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.%s: Failed to scan report: %v", op, err)
			return nil, err
		}
		reports = append(reports, rpt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.%s: Failed to iterate reports: %v", op, err)
		return nil, err
	}
	return reports, nil
}
