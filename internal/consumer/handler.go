package consumer

import (
	"context"
	"fmt"

	"analytics-srv/internal/aggregation"
	dashboardConsumer "analytics-srv/internal/dashboard/delivery/kafka/consumer"
	dashboardPostgre "analytics-srv/internal/dashboard/repository/postgre"
	dashboardRedis "analytics-srv/internal/dashboard/repository/redis"
	dashboardUsecase "analytics-srv/internal/dashboard/usecase"
	metricPostgre "analytics-srv/internal/metric/repository/postgre"
	metricUsecase "analytics-srv/internal/metric/usecase"
	postPostgre "analytics-srv/internal/post/repository/postgre"
	postUsecase "analytics-srv/internal/post/usecase"
	reportRabbit "analytics-srv/internal/report/delivery/rabbitmq"
	reportConsumer "analytics-srv/internal/report/delivery/rabbitmq/consumer"
	reportProducer "analytics-srv/internal/report/delivery/rabbitmq/producer"
	"analytics-srv/internal/report/delivery/scheduler"
	reportPostgre "analytics-srv/internal/report/repository/postgre"
	reportUsecase "analytics-srv/internal/report/usecase"
	sourcePostgre "analytics-srv/internal/source/repository/postgre"
	sourceUsecase "analytics-srv/internal/source/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	dashboardConsumer *dashboardConsumer.Consumer
	reportConsumer    *reportConsumer.Consumer
	reportScheduler   *scheduler.Scheduler
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	engine := aggregation.New(srv.l, srv.metrics)
	sourceUC := sourceUsecase.New(sourcePostgre.New(srv.postgresDB, srv.l), srv.l)
	// Workers only read posts, so no change events are produced here.
	postUC := postUsecase.New(postPostgre.New(srv.postgresDB, srv.l), sourceUC, nil, srv.l)

	cache := dashboardRedis.New(srv.redisClient, srv.config.Dashboard.CacheTTL, srv.l)
	metricUC := metricUsecase.New(metricPostgre.New(srv.postgresDB, srv.l), sourceUC, postUC, engine, cache, srv.location, srv.l)
	dashboardUC := dashboardUsecase.New(dashboardPostgre.New(srv.postgresDB, srv.l), cache, metricUC, postUC, engine, srv.metrics, srv.location, srv.l)

	dashboardCons, err := dashboardConsumer.New(dashboardConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     dashboardUC,
		Metrics:     srv.metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard consumer: %w", err)
	}
	srv.l.Infof(ctx, "Dashboard domain initialized")

	topology := reportRabbit.Topology{
		Exchange:          srv.config.RabbitMQ.Exchange,
		ReportQueue:       srv.config.RabbitMQ.ReportQueue,
		NotificationQueue: srv.config.RabbitMQ.NotificationQueue,
	}
	producerCh, err := srv.rabbitConn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open RabbitMQ producer channel: %w", err)
	}
	producer, err := reportProducer.New(srv.l, producerCh, topology)
	if err != nil {
		return nil, fmt.Errorf("failed to create report producer: %w", err)
	}

	reportUC := reportUsecase.New(
		reportPostgre.New(srv.postgresDB, srv.l),
		producer,
		srv.minioClient,
		metricUC,
		postUC,
		engine,
		srv.metrics,
		srv.l,
		reportUsecase.Config{
			Bucket:         srv.config.MinIO.Bucket,
			DownloadExpiry: srv.config.Report.DownloadExpiry,
			Location:       srv.location,
		},
	)

	consumerCh, err := srv.rabbitConn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open RabbitMQ consumer channel: %w", err)
	}
	reportCons, err := reportConsumer.New(reportConsumer.Config{
		Logger:   srv.l,
		Channel:  consumerCh,
		Topology: topology,
		Prefetch: srv.config.RabbitMQ.Prefetch,
		UseCase:  reportUC,
		Metrics:  srv.metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}

	consumers := &domainConsumers{
		dashboardConsumer: dashboardCons,
		reportConsumer:    reportCons,
	}

	if srv.config.Scheduler.Enabled {
		consumers.reportScheduler, err = scheduler.New(srv.l, reportUC, srv.config.Scheduler.Interval)
		if err != nil {
			return nil, fmt.Errorf("failed to create report scheduler: %w", err)
		}
	}
	srv.l.Infof(ctx, "Report domain initialized")

	return consumers, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.dashboardConsumer.ConsumePostChanged(ctx); err != nil {
		return fmt.Errorf("failed to start dashboard consumer: %w", err)
	}
	if err := consumers.reportConsumer.ConsumeReportJobs(ctx); err != nil {
		return fmt.Errorf("failed to start report consumer: %w", err)
	}
	if consumers.reportScheduler != nil {
		consumers.reportScheduler.Start(ctx)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.dashboardConsumer != nil {
		if err := consumers.dashboardConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing dashboard consumer: %v", err)
		}
	}
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
