package consumer

import (
	"context"
	"database/sql"
	"time"

	"analytics-srv/config"
	"analytics-srv/pkg/discord"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/minio"
	"analytics-srv/pkg/monitoring"
	pkgRabbit "analytics-srv/pkg/rabbitmq"
	"analytics-srv/pkg/redis"
)

// ConsumerServer runs the background side of the service: the report
// worker, the report scheduler and the dashboard cache consumer.
type ConsumerServer struct {
	// Core Configuration
	l        log.Logger
	config   *config.Config
	location *time.Location

	// Infrastructure clients
	postgresDB  *sql.DB
	redisClient redis.IRedis
	minioClient minio.MinIO
	rabbitConn  pkgRabbit.IRabbitMQ

	// Monitoring & Notification
	metrics *monitoring.Collector
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	PostgresDB  *sql.DB
	RedisClient redis.IRedis
	MinIOClient minio.MinIO
	RabbitMQ    pkgRabbit.IRabbitMQ

	// Monitoring & Notification
	Metrics *monitoring.Collector
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(context.Background(), consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(context.Background(), "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.Background(), consumers)

	srv.l.Info(context.Background(), "Consumer Server stopped gracefully")
	return nil
}
