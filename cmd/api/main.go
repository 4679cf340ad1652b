package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"analytics-srv/config"
	configKafka "analytics-srv/config/kafka"
	configMinio "analytics-srv/config/minio"
	configPostgre "analytics-srv/config/postgre"
	configRabbit "analytics-srv/config/rabbitmq"
	configRedis "analytics-srv/config/redis"
	_ "analytics-srv/docs"
	"analytics-srv/internal/httpserver"
	"analytics-srv/pkg/discord"
	pkgJWT "analytics-srv/pkg/jwt"
	pkgKafka "analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/monitoring"
)

// @title       Analytics Service API
// @description Marketing analytics: sources, posts, metric mappings, dashboards and reports.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name analytics_auth_token
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// 7. RabbitMQ
	rabbitConn, err := configRabbit.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbit.Disconnect()
	logger.Info(ctx, "RabbitMQ connected")

	// 8. Kafka producer (optional: post changes are not published without it)
	var kafkaProducer pkgKafka.IProducer
	kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
		kafkaProducer = nil
	} else {
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 9. Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	// 10. JWT manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	// 11. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Version:     cfg.Environment.Version,

		PostgresDB: postgresDB,

		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		RabbitMQ:      rabbitConn,

		Config:     cfg,
		JWTManager: jwtManager,

		Metrics: monitoring.NewCollector(httpserver.ServiceName, cfg.Environment.Version),
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
