package http

import (
	"dealflow-srv/internal/analysis"
	"dealflow-srv/internal/middleware"
	"dealflow-srv/pkg/discord"
	"dealflow-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analysis.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc analysis.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/analysis/start", h.StartAnalysis)
	r.GET("/analysis/:job_id/status", h.GetStatus)
	r.GET("/analysis/:job_id/report-url", h.GetReportURL)
}
