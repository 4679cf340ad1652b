package redis

import (
	"time"

	"analytics-srv/internal/dashboard/repository"
	"analytics-srv/pkg/log"
	pkgRedis "analytics-srv/pkg/redis"
)

// DefaultRenderTTL bounds how stale a cached render can get when no
// invalidation arrives.
const DefaultRenderTTL = 5 * time.Minute

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory. A non-positive ttl uses DefaultRenderTTL.
func New(redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.CacheRepository {
	if ttl <= 0 {
		ttl = DefaultRenderTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
