package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"analytics-srv/config"
	"analytics-srv/config/minio"
	"analytics-srv/config/postgre"
	"analytics-srv/config/rabbitmq"
	"analytics-srv/config/redis"
	"analytics-srv/internal/consumer"
	"analytics-srv/pkg/discord"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/monitoring"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Analytics Consumer Service...")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect()
	logger.Info(ctx, "PostgreSQL client initialized")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// MinIO
	minioClient, err := minio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer minio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// RabbitMQ
	rabbitConn, err := rabbitmq.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer rabbitmq.Disconnect()
	logger.Info(ctx, "RabbitMQ connected")

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:      logger,
		Config:      cfg,
		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		MinIOClient: minioClient,
		RabbitMQ:    rabbitConn,
		Metrics:     monitoring.NewCollector("analytics-consumer", cfg.Environment.Version),
		Discord:     discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
