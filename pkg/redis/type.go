package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	scanBatchSize         = 100
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
	// ErrNil is returned by Get when the key does not exist.
	ErrNil = goredis.Nil
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type redisImpl struct {
	client *goredis.Client
}
