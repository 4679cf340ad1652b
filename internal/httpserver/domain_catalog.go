package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboardHTTP "analytics-srv/internal/dashboard/delivery/http"
	metricHTTP "analytics-srv/internal/metric/delivery/http"
	"analytics-srv/internal/middleware"
	postHTTP "analytics-srv/internal/post/delivery/http"
	sourceHTTP "analytics-srv/internal/source/delivery/http"
)

func (srv *HTTPServer) setupSourceDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	sourceHTTP.New(srv.l, srv.sourceUC, srv.discord).RegisterRoutes(r, mw)
	srv.l.Infof(ctx, "Source domain registered")
}

func (srv *HTTPServer) setupPostDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	postHTTP.New(srv.l, srv.postUC, srv.discord).RegisterRoutes(r, mw)
	srv.l.Infof(ctx, "Post domain registered")
}

func (srv *HTTPServer) setupMetricDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	metricHTTP.New(srv.l, srv.metricUC, srv.discord).RegisterRoutes(r, mw)
	srv.l.Infof(ctx, "Metric domain registered")
}

func (srv *HTTPServer) setupDashboardDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	dashboardHTTP.New(srv.l, srv.dashboardUC, srv.discord).RegisterRoutes(r, mw)
	srv.l.Infof(ctx, "Dashboard domain registered")
}
