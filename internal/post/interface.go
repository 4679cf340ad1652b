package post

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Post, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Post, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Post, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.Post, error)
	RecordMetrics(ctx context.Context, sc model.Scope, input RecordMetricsInput) (model.Post, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ListForEvaluation returns the posts of the given sources dated within
	// [from, to]. It is the post universe the aggregation engine runs over.
	ListForEvaluation(ctx context.Context, input EvaluationInput) ([]model.Post, error)
}

// Producer publishes post change events.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishPostChanged(ctx context.Context, event ChangedEvent) error
}
