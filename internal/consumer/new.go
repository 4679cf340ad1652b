package consumer

import (
	"fmt"
	"time"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:           cfg.Logger,
		config:      cfg.Config,
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		minioClient: cfg.MinIOClient,
		rabbitConn:  cfg.RabbitMQ,
		metrics:     cfg.Metrics,
		discord:     cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(srv.config.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid report timezone: %w", err)
	}
	srv.location = loc

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}
	if len(srv.config.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}
	if srv.rabbitConn == nil {
		return fmt.Errorf("rabbitmq connection is required")
	}

	return nil
}
