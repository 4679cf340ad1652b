package repository

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name MetricRepository
type MetricRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.MetricMapping, error)
	Detail(ctx context.Context, id string) (model.MetricMapping, error)
	List(ctx context.Context, opts ListOptions) ([]model.MetricMapping, error)
	Count(ctx context.Context, opts FilterOptions) (int64, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.MetricMapping, error)
	Update(ctx context.Context, opts UpdateOptions) (model.MetricMapping, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	MetricRepository
}
