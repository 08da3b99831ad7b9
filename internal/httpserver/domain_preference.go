package httpserver

import (
	"dealflow-srv/internal/middleware"
	preferencehttp "dealflow-srv/internal/preference/delivery/http"
	"dealflow-srv/internal/preference/repository"
	preferencePostgre "dealflow-srv/internal/preference/repository/postgre"
	preferenceRedis "dealflow-srv/internal/preference/repository/redis"
	preferenceUsecase "dealflow-srv/internal/preference/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupPreferenceDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	var repo repository.PostgresRepository
	if srv.postgresDB != nil {
		repo = preferencePostgre.New(srv.postgresDB, srv.l)
	}

	cache := preferenceRedis.New(srv.redisClient, srv.l)

	uc := preferenceUsecase.New(repo, cache, srv.engineClient, srv.l)

	handler := preferencehttp.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(api, mw)
}
