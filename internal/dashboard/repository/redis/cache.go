package redis

import (
	"context"
	"errors"
	"fmt"

	"analytics-srv/internal/model"
	pkgRedis "analytics-srv/pkg/redis"
)

const renderKeyPrefix = "dashboard:render:"

func renderKey(dashboardID string, day model.Date) string {
	return fmt.Sprintf("%s%s:%s", renderKeyPrefix, dashboardID, day.String())
}

// GetRender returns the cached render. A miss is (nil, false, nil).
func (r *implCacheRepository) GetRender(ctx context.Context, dashboardID string, day model.Date) ([]byte, bool, error) {
	data, err := r.redis.Get(ctx, renderKey(dashboardID, day))
	if errors.Is(err, pkgRedis.ErrNil) {
		return nil, false, nil
	}
	if err != nil {
		r.l.Warnf(ctx, "dashboard.repository.redis.GetRender: Failed to read cache: %v", err)
		return nil, false, err
	}
	return []byte(data), true, nil
}

func (r *implCacheRepository) SetRender(ctx context.Context, dashboardID string, day model.Date, data []byte) error {
	if err := r.redis.Set(ctx, renderKey(dashboardID, day), data, r.ttl); err != nil {
		r.l.Warnf(ctx, "dashboard.repository.redis.SetRender: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) InvalidateDashboard(ctx context.Context, dashboardID string) error {
	return r.deletePattern(ctx, "InvalidateDashboard", renderKeyPrefix+dashboardID+":*")
}

func (r *implCacheRepository) InvalidateAll(ctx context.Context) error {
	return r.deletePattern(ctx, "InvalidateAll", renderKeyPrefix+"*")
}

func (r *implCacheRepository) deletePattern(ctx context.Context, op, pattern string) error {
	n, err := r.redis.DeleteByPattern(ctx, pattern)
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.%s: Failed to delete %s: %v", op, pattern, err)
		return err
	}
	r.l.Debugf(ctx, "dashboard.repository.redis.%s: deleted %d keys", op, n)
	return nil
}
