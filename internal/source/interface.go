package source

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Source, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Source, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Source, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Source, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
