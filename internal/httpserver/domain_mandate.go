package httpserver

import (
	mandatehttp "dealflow-srv/internal/mandate/delivery/http"
	mandateRedis "dealflow-srv/internal/mandate/repository/redis"
	mandateUsecase "dealflow-srv/internal/mandate/usecase"
	"dealflow-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupMandateDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	repo := mandateRedis.New(srv.redisClient, srv.l)

	uc := mandateUsecase.New(repo, srv.l)

	handler := mandatehttp.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(api, mw)
}
