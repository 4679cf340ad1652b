package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/source/repository"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Source, error) {
	fields, err := marshalFields(opts.Fields)
	if err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.Create: Failed to marshal fields: %v", err)
		return model.Source{}, repository.ErrSourceCreateFailed
	}

	row := r.db.QueryRowContext(ctx, insertSourceQuery,
		opts.ID, opts.Name, opts.Platform, opts.Color, string(opts.Status), fields, opts.CreatedBy, time.Now())
	s, err := scanSource(row)
	if err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.Create: Failed to insert source: %v", err)
		return model.Source{}, repository.ErrSourceCreateFailed
	}
	return s, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Source, error) {
	s, err := scanSource(r.db.QueryRowContext(ctx, detailSourceQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Source{}, repository.ErrSourceNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.Detail: Failed to get source: %v", err)
		return model.Source{}, err
	}
	return s, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Source, error) {
	query, args := buildListQuery(opts)
	return r.query(ctx, "List", query, args...)
}

func (r *implRepository) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	query, args := buildCountQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.Count: Failed to count sources: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *implRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Source, error) {
	if len(ids) == 0 {
		return []model.Source{}, nil
	}
	query, args := buildListByIDsQuery(ids)
	return r.query(ctx, "ListByIDs", query, args...)
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Source, error) {
	fields, err := marshalFields(opts.Fields)
	if err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.Update: Failed to marshal fields: %v", err)
		return model.Source{}, repository.ErrSourceUpdateFailed
	}

	row := r.db.QueryRowContext(ctx, updateSourceQuery,
		opts.ID, opts.Name, opts.Platform, opts.Color, string(opts.Status), fields, time.Now())
	s, err := scanSource(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Source{}, repository.ErrSourceNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.Update: Failed to update source: %v", err)
		return model.Source{}, repository.ErrSourceUpdateFailed
	}
	return s, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteSourceQuery, id, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.Delete: Failed to delete source: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrSourceNotFound
	}
	return nil
}

func (r *implRepository) query(ctx context.Context, op, query string, args ...any) ([]model.Source, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.%s: Failed to query sources: %v", op, err)
		return nil, err
	}
	defer rows.Close()

	sources := make([]model.Source, 0)
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			r.l.Errorf(ctx, "source.repository.postgre.%s: Failed to scan source: %v", op, err)
			return nil, err
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "source.repository.postgre.%s: Failed to iterate sources: %v", op, err)
		return nil, err
	}
	return sources, nil
}
