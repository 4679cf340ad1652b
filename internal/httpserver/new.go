package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"analytics-srv/config"
	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/dashboard"
	dashboardRepo "analytics-srv/internal/dashboard/repository"
	"analytics-srv/internal/metric"
	"analytics-srv/internal/post"
	"analytics-srv/internal/source"
	"analytics-srv/pkg/discord"
	pkgJWT "analytics-srv/pkg/jwt"
	pkgKafka "analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/minio"
	"analytics-srv/pkg/monitoring"
	pkgRabbit "analytics-srv/pkg/rabbitmq"
	pkgRedis "analytics-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	version     string
	location    *time.Location

	// Database Configuration
	postgresDB *sql.DB

	// Infrastructure
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbit.IRabbitMQ

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	metrics *monitoring.Collector
	discord discord.IDiscord

	// Core domains shared by the HTTP domains
	engine         *aggregation.Engine
	sourceUC       source.UseCase
	postUC         post.UseCase
	metricUC       metric.UseCase
	dashboardUC    dashboard.UseCase
	dashboardCache dashboardRepo.CacheRepository
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Version     string

	// Database Configuration
	PostgresDB *sql.DB

	// Infrastructure. KafkaProducer may be nil, in which case post changes
	// are not published.
	RedisClient   pkgRedis.IRedis
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	RabbitMQ      pkgRabbit.IRabbitMQ

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	Metrics *monitoring.Collector
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		version:     cfg.Version,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Infrastructure
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitMQ,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		metrics: cfg.Metrics,
		discord: cfg.Discord,
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

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Infrastructure
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.rabbitConn == nil {
		return errors.New("rabbitMQ is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
