package repository

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name DashboardRepository
type DashboardRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Dashboard, error)
	Detail(ctx context.Context, id string) (model.Dashboard, error)
	Default(ctx context.Context, createdBy string) (model.Dashboard, error)
	List(ctx context.Context, opts ListOptions) ([]model.Dashboard, error)
	Count(ctx context.Context, opts FilterOptions) (int64, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Dashboard, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	DashboardRepository
}

// CacheRepository stores rendered dashboards.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetRender(ctx context.Context, dashboardID string, day model.Date) ([]byte, bool, error)
	SetRender(ctx context.Context, dashboardID string, day model.Date, data []byte) error
	InvalidateDashboard(ctx context.Context, dashboardID string) error
	InvalidateAll(ctx context.Context) error
}
