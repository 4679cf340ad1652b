package repository

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name PostRepository
type PostRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Post, error)
	Detail(ctx context.Context, id string) (model.Post, error)
	List(ctx context.Context, opts ListOptions) ([]model.Post, error)
	Count(ctx context.Context, opts FilterOptions) (int64, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Post, error)
	UpdateStatus(ctx context.Context, id string, status model.PostStatus) (model.Post, error)
	UpdateMetrics(ctx context.Context, opts UpdateMetricsOptions) (model.Post, error)
	Delete(ctx context.Context, id string) (model.Post, error)
	ListForEvaluation(ctx context.Context, opts EvaluationOptions) ([]model.Post, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	PostRepository
}
