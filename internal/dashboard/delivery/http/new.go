package http

import (
	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/middleware"
	"analytics-srv/pkg/discord"
	"analytics-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      dashboard.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc dashboard.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
