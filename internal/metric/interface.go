package metric

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.MetricMapping, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.MetricMapping, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.MetricMapping, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.MetricMapping, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Evaluate(ctx context.Context, sc model.Scope, input EvaluateInput) (EvaluateOutput, error)
}

// CacheInvalidator drops cached results that depend on metric mappings.
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) error
}
