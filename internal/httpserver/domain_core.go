package httpserver

import (
	"context"

	"analytics-srv/internal/aggregation"
	dashboardPostgre "analytics-srv/internal/dashboard/repository/postgre"
	dashboardRedis "analytics-srv/internal/dashboard/repository/redis"
	dashboardUsecase "analytics-srv/internal/dashboard/usecase"
	metricPostgre "analytics-srv/internal/metric/repository/postgre"
	metricUsecase "analytics-srv/internal/metric/usecase"
	"analytics-srv/internal/post"
	postProducer "analytics-srv/internal/post/delivery/kafka/producer"
	postPostgre "analytics-srv/internal/post/repository/postgre"
	postUsecase "analytics-srv/internal/post/usecase"
	sourcePostgre "analytics-srv/internal/source/repository/postgre"
	sourceUsecase "analytics-srv/internal/source/usecase"
)

// setupCoreDomains builds the usecases other domains depend on.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	srv.engine = aggregation.New(srv.l, srv.metrics)

	srv.sourceUC = sourceUsecase.New(sourcePostgre.New(srv.postgresDB, srv.l), srv.l)

	var producer post.Producer
	if srv.kafkaProducer != nil {
		producer = postProducer.New(srv.l, srv.kafkaProducer)
	} else {
		srv.l.Warnf(ctx, "Kafka producer not configured, post changes will not be published")
	}
	srv.postUC = postUsecase.New(postPostgre.New(srv.postgresDB, srv.l), srv.sourceUC, producer, srv.l)

	srv.dashboardCache = dashboardRedis.New(srv.redisClient, srv.config.Dashboard.CacheTTL, srv.l)

	srv.metricUC = metricUsecase.New(
		metricPostgre.New(srv.postgresDB, srv.l),
		srv.sourceUC,
		srv.postUC,
		srv.engine,
		srv.dashboardCache,
		srv.location,
		srv.l,
	)

	srv.dashboardUC = dashboardUsecase.New(
		dashboardPostgre.New(srv.postgresDB, srv.l),
		srv.dashboardCache,
		srv.metricUC,
		srv.postUC,
		srv.engine,
		srv.metrics,
		srv.location,
		srv.l,
	)

	srv.l.Infof(ctx, "Core domains (Source, Post, Metric, Dashboard) initialized")
	return nil
}
