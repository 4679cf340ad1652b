package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/post/repository"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Post, error) {
	row := r.db.QueryRowContext(ctx, insertPostQuery,
		opts.ID, opts.Title, opts.SourceID, opts.Date, string(opts.Status), toNullContent(opts.Content), opts.CreatedBy, time.Now())
	p, err := scanPost(row)
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.Create: Failed to insert post: %v", err)
		return model.Post{}, repository.ErrPostCreateFailed
	}
	return p, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, detailPostQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, repository.ErrPostNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.Detail: Failed to get post: %v", err)
		return model.Post{}, err
	}
	return p, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Post, error) {
	query, args := buildListQuery(opts)
	return r.query(ctx, "List", query, args...)
}

func (r *implRepository) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	query, args := buildCountQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.Count: Failed to count posts: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Post, error) {
	row := r.db.QueryRowContext(ctx, updatePostQuery,
		opts.ID, opts.Title, opts.SourceID, opts.Date, toNullContent(opts.Content), time.Now())
	return r.scanMutation(ctx, "Update", row)
}

func (r *implRepository) UpdateStatus(ctx context.Context, id string, status model.PostStatus) (model.Post, error) {
	row := r.db.QueryRowContext(ctx, updatePostStatusQuery, id, string(status), time.Now())
	return r.scanMutation(ctx, "UpdateStatus", row)
}

func (r *implRepository) UpdateMetrics(ctx context.Context, opts repository.UpdateMetricsOptions) (model.Post, error) {
	metrics, err := marshalMetrics(opts.Metrics)
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.UpdateMetrics: Failed to marshal metrics: %v", err)
		return model.Post{}, repository.ErrPostUpdateFailed
	}

	row := r.db.QueryRowContext(ctx, updatePostMetricsQuery, opts.ID, metrics, string(opts.Status), time.Now())
	return r.scanMutation(ctx, "UpdateMetrics", row)
}

func (r *implRepository) Delete(ctx context.Context, id string) (model.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, deletePostQuery, id, time.Now()))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, repository.ErrPostNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.Delete: Failed to delete post: %v", err)
		return model.Post{}, err
	}
	return p, nil
}

func (r *implRepository) ListForEvaluation(ctx context.Context, opts repository.EvaluationOptions) ([]model.Post, error) {
	if len(opts.SourceIDs) == 0 {
		return []model.Post{}, nil
	}
	query, args := buildEvaluationQuery(opts)
	return r.query(ctx, "ListForEvaluation", query, args...)
}

func (r *implRepository) scanMutation(ctx context.Context, op string, row *sql.Row) (model.Post, error) {
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, repository.ErrPostNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.%s: Failed to update post: %v", op, err)
		return model.Post{}, repository.ErrPostUpdateFailed
	}
	return p, nil
}

func (r *implRepository) query(ctx context.Context, op, query string, args ...any) ([]model.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.%s: Failed to query posts: %v", op, err)
		return nil, err
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			r.l.Errorf(ctx, "post.repository.postgre.%s: Failed to scan post: %v", op, err)
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.%s: Failed to iterate posts: %v", op, err)
		return nil, err
	}
	return posts, nil
}
