package redis

import (
	"context"
	"testing"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/log"
	pkgRedis "analytics-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*implCacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := New(pkgRedis.NewFromClient(client), time.Minute, log.NewNop()).(*implCacheRepository)
	return repo, mr
}

func TestRender_RoundTrip(t *testing.T) {
	repo, mr := newTestCache(t)
	ctx := context.Background()
	day := model.Date{Year: 2024, Month: time.May, Day: 15}

	data, ok, err := repo.GetRender(ctx, "d1", day)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)

	require.NoError(t, repo.SetRender(ctx, "d1", day, []byte(`{"dashboard_id":"d1"}`)))
	assert.True(t, mr.Exists("dashboard:render:d1:2024-05-15"))
	assert.Equal(t, time.Minute, mr.TTL("dashboard:render:d1:2024-05-15"))

	data, ok, err = repo.GetRender(ctx, "d1", day)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"dashboard_id":"d1"}`, string(data))

	mr.FastForward(2 * time.Minute)
	_, ok, err = repo.GetRender(ctx, "d1", day)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	repo, mr := newTestCache(t)
	ctx := context.Background()
	d1 := model.Date{Year: 2024, Month: time.May, Day: 15}
	d2 := model.Date{Year: 2024, Month: time.May, Day: 16}

	require.NoError(t, repo.SetRender(ctx, "a", d1, []byte("1")))
	require.NoError(t, repo.SetRender(ctx, "a", d2, []byte("2")))
	require.NoError(t, repo.SetRender(ctx, "b", d1, []byte("3")))
	require.NoError(t, mr.Set("unrelated", "x"))

	require.NoError(t, repo.InvalidateDashboard(ctx, "a"))
	assert.False(t, mr.Exists("dashboard:render:a:2024-05-15"))
	assert.False(t, mr.Exists("dashboard:render:a:2024-05-16"))
	assert.True(t, mr.Exists("dashboard:render:b:2024-05-15"))

	require.NoError(t, repo.InvalidateAll(ctx))
	assert.False(t, mr.Exists("dashboard:render:b:2024-05-15"))
	assert.True(t, mr.Exists("unrelated"))
}

func TestNew_DefaultTTL(t *testing.T) {
	repo := New(nil, 0, log.NewNop()).(*implCacheRepository)
	assert.Equal(t, DefaultRenderTTL, repo.ttl)
}
