package http

import (
	"analytics-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	api.Use(mw.Auth())
	{
		api.POST("", h.Create)
		api.GET("", h.List)
		api.GET("/runs/:run_id", h.GetRun)
		api.GET("/runs/:run_id/download", h.Download)
		api.GET("/:id", h.Detail)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
		api.POST("/:id/generate", h.Generate)
		api.GET("/:id/runs", h.ListRuns)
	}
}
