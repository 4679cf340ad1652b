package dashboard

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Dashboard, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Dashboard, error)
	Default(ctx context.Context, sc model.Scope) (model.Dashboard, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Dashboard, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Render evaluates every widget of the dashboard at input.Now.
	Render(ctx context.Context, sc model.Scope, input RenderInput) (RenderOutput, error)

	// InvalidateCache drops every cached render.
	InvalidateCache(ctx context.Context) error
}
