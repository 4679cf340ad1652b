package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"analytics-srv/internal/metric/repository"
	"analytics-srv/internal/model"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.MetricMapping, error) {
	sms, err := marshalSourceMetrics(opts.SourceMetrics)
	if err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.Create: Failed to marshal source metrics: %v", err)
		return model.MetricMapping{}, repository.ErrMetricCreateFailed
	}

	row := r.db.QueryRowContext(ctx, insertMetricQuery,
		opts.ID, opts.Name, sms, string(opts.CalculationType),
		toNullFormula(opts.CalculationType, opts.CustomFormula), opts.CreatedBy, time.Now())
	m, err := scanMetric(row)
	if err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.Create: Failed to insert metric mapping: %v", err)
		return model.MetricMapping{}, repository.ErrMetricCreateFailed
	}
	return m, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.MetricMapping, error) {
	m, err := scanMetric(r.db.QueryRowContext(ctx, detailMetricQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.MetricMapping{}, repository.ErrMetricNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.Detail: Failed to get metric mapping: %v", err)
		return model.MetricMapping{}, err
	}
	return m, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.MetricMapping, error) {
	query, args := buildListQuery(opts)
	return r.query(ctx, "List", query, args...)
}

func (r *implRepository) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	query, args := buildCountQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.Count: Failed to count metric mappings: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *implRepository) ListByIDs(ctx context.Context, ids []string) ([]model.MetricMapping, error) {
	if len(ids) == 0 {
		return []model.MetricMapping{}, nil
	}
	query, args := buildListByIDsQuery(ids)
	return r.query(ctx, "ListByIDs", query, args...)
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.MetricMapping, error) {
	sms, err := marshalSourceMetrics(opts.SourceMetrics)
	if err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.Update: Failed to marshal source metrics: %v", err)
		return model.MetricMapping{}, repository.ErrMetricUpdateFailed
	}

	row := r.db.QueryRowContext(ctx, updateMetricQuery,
		opts.ID, opts.Name, sms, string(opts.CalculationType),
		toNullFormula(opts.CalculationType, opts.CustomFormula), time.Now())
	m, err := scanMetric(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MetricMapping{}, repository.ErrMetricNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.Update: Failed to update metric mapping: %v", err)
		return model.MetricMapping{}, repository.ErrMetricUpdateFailed
	}
	return m, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteMetricQuery, id, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.Delete: Failed to delete metric mapping: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrMetricNotFound
	}
	return nil
}

func (r *implRepository) query(ctx context.Context, op, query string, args ...any) ([]model.MetricMapping, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.%s: Failed to query metric mappings: %v", op, err)
		return nil, err
	}
	defer rows.Close()

	mappings := make([]model.MetricMapping, 0)
	for rows.Next() {
		m, err := scanMetric(rows)
		if err != nil {
			r.l.Errorf(ctx, "metric.repository.postgre.%s: Failed to scan metric mapping: %v", op, err)
			return nil, err
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "metric.repository.postgre.%s: Failed to iterate metric mappings: %v", op, err)
		return nil, err
	}
	return mappings, nil
}
