package repository

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name SourceRepository
type SourceRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Source, error)
	Detail(ctx context.Context, id string) (model.Source, error)
	List(ctx context.Context, opts ListOptions) ([]model.Source, error)
	Count(ctx context.Context, opts FilterOptions) (int64, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Source, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Source, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	SourceRepository
}
