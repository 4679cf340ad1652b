package http

import (
	"analytics-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/sources")
	api.Use(mw.Auth())
	{
		api.POST("", h.Create)
		api.GET("", h.List)
		api.GET("/:id", h.Detail)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
	}
}
