package scope

import (
	"context"

	"analytics-srv/internal/model"
)

type scopeCtxKey struct{}

func SetScopeToContext(ctx context.Context, scope model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, scope)
}

// GetScopeFromContext returns the zero Scope when none is set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	scope, _ := ctx.Value(scopeCtxKey{}).(model.Scope)
	return scope
}
