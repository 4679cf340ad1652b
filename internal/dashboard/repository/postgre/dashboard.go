package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"analytics-srv/internal/dashboard/repository"
	"analytics-srv/internal/model"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Dashboard, error) {
	widgets, err := marshalWidgets(opts.Widgets)
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.Create: Failed to marshal widgets: %v", err)
		return model.Dashboard{}, repository.ErrDashboardCreateFailed
	}

	now := time.Now()
	d, err := r.writeDashboard(ctx, opts.IsDefault, opts.CreatedBy, opts.ID, now, insertDashboardQuery,
		opts.ID, opts.Name, toNullDescription(opts.Description), widgets, opts.IsDefault, opts.CreatedBy, now)
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.Create: Failed to insert dashboard: %v", err)
		return model.Dashboard{}, repository.ErrDashboardCreateFailed
	}
	return d, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Dashboard, error) {
	d, err := scanDashboard(r.db.QueryRowContext(ctx, detailDashboardQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Dashboard{}, repository.ErrDashboardNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.Detail: Failed to get dashboard: %v", err)
		return model.Dashboard{}, err
	}
	return d, nil
}

func (r *implRepository) Default(ctx context.Context, createdBy string) (model.Dashboard, error) {
	d, err := scanDashboard(r.db.QueryRowContext(ctx, defaultDashboardQuery, createdBy))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Dashboard{}, repository.ErrDashboardNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.Default: Failed to get default dashboard: %v", err)
		return model.Dashboard{}, err
	}
	return d, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Dashboard, error) {
	query, args := buildListQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.List: Failed to query dashboards: %v", err)
		return nil, err
	}
	defer rows.Close()

	dashboards := make([]model.Dashboard, 0)
	for rows.Next() {
		d, err := scanDashboard(rows)
		if err != nil {
			r.l.Errorf(ctx, "dashboard.repository.postgre.List: Failed to scan dashboard: %v", err)
			return nil, err
		}
		dashboards = append(dashboards, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.List: Failed to iterate dashboards: %v", err)
		return nil, err
	}
	return dashboards, nil
}

func (r *implRepository) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	query, args := buildCountQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.Count: Failed to count dashboards: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Dashboard, error) {
	widgets, err := marshalWidgets(opts.Widgets)
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.Update: Failed to marshal widgets: %v", err)
		return model.Dashboard{}, repository.ErrDashboardUpdateFailed
	}

	now := time.Now()
	d, err := r.writeDashboard(ctx, opts.IsDefault, opts.CreatedBy, opts.ID, now, updateDashboardQuery,
		opts.ID, opts.Name, toNullDescription(opts.Description), widgets, opts.IsDefault, now)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Dashboard{}, repository.ErrDashboardNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.Update: Failed to update dashboard: %v", err)
		return model.Dashboard{}, repository.ErrDashboardUpdateFailed
	}
	return d, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteDashboardQuery, id, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.postgre.Delete: Failed to delete dashboard: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrDashboardNotFound
	}
	return nil
}

// writeDashboard runs an insert or update returning one dashboard row. When
// makeDefault is set the owner's other defaults are cleared in the same
// transaction so at most one default exists per owner.
func (r *implRepository) writeDashboard(ctx context.Context, makeDefault bool, owner, id string, now time.Time, query string, args ...any) (model.Dashboard, error) {
	if !makeDefault {
		return scanDashboard(r.db.QueryRowContext(ctx, query, args...))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Dashboard{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, clearDefaultQuery, owner, id, now); err != nil {
		return model.Dashboard{}, err
	}
	d, err := scanDashboard(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return model.Dashboard{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}
