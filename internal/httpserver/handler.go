package httpserver

import (
	"context"
	"fmt"

	"analytics-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Cookie.Name)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return fmt.Errorf("failed to setup core domains: %w", err)
	}

	r := srv.gin.Group("")
	srv.setupSourceDomain(ctx, r, mw)
	srv.setupPostDomain(ctx, r, mw)
	srv.setupMetricDomain(ctx, r, mw)
	srv.setupDashboardDomain(ctx, r, mw)
	if err := srv.setupReportDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup report domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.Trace())
	srv.gin.Use(srv.metrics.Middleware())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", srv.metrics.Handler())

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
