package httpserver

import (
	"net/http"

	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "analytics-srv is up"
	ServiceName   = "analytics-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": srv.version,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests (Postgres, Redis, RabbitMQ).
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		notReady(c, "Database connection failed", err)
		return
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		notReady(c, "Redis connection failed", err)
		return
	}
	if !srv.rabbitConn.IsReady() {
		notReady(c, "RabbitMQ connection is not ready", nil)
		return
	}
	response.OK(c, gin.H{
		"status":   "ready",
		"message":  HealthMessage,
		"version":  srv.version,
		"service":  ServiceName,
		"database": "connected",
		"redis":    "connected",
		"rabbitmq": "connected",
	})
}

func notReady(c *gin.Context, message string, err error) {
	body := gin.H{
		"status":  "not ready",
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusServiceUnavailable, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": srv.version,
		"service": ServiceName,
	})
}
