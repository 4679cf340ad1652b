package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"analytics-srv/internal/middleware"
	reportHTTP "analytics-srv/internal/report/delivery/http"
	reportRabbit "analytics-srv/internal/report/delivery/rabbitmq"
	reportProducer "analytics-srv/internal/report/delivery/rabbitmq/producer"
	reportPostgre "analytics-srv/internal/report/repository/postgre"
	reportUsecase "analytics-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}
	producer, err := reportProducer.New(srv.l, ch, reportRabbit.Topology{
		Exchange:          srv.config.RabbitMQ.Exchange,
		ReportQueue:       srv.config.RabbitMQ.ReportQueue,
		NotificationQueue: srv.config.RabbitMQ.NotificationQueue,
	})
	if err != nil {
		return fmt.Errorf("failed to create report producer: %w", err)
	}

	uc := reportUsecase.New(
		reportPostgre.New(srv.postgresDB, srv.l),
		producer,
		srv.minioClient,
		srv.metricUC,
		srv.postUC,
		srv.engine,
		srv.metrics,
		srv.l,
		reportUsecase.Config{
			Bucket:         srv.config.MinIO.Bucket,
			DownloadExpiry: srv.config.Report.DownloadExpiry,
			Location:       srv.location,
		},
	)

	reportHTTP.New(srv.l, uc, srv.discord).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
