package http

import (
	"dealflow-srv/internal/mandate"
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
	uc      mandate.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc mandate.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/mandate/facts", h.GetFacts)
	r.PUT("/mandate/facts", h.PutFacts)
	r.GET("/mandate/soft", h.GetSoft)
	r.PUT("/mandate/soft", h.PutSoft)
}
