package httpserver

import (
	"dealflow-srv/internal/middleware"
	resulthttp "dealflow-srv/internal/result/delivery/http"
	"dealflow-srv/internal/result/repository"
	resultPostgre "dealflow-srv/internal/result/repository/postgre"
	resultUsecase "dealflow-srv/internal/result/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupResultDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	var repo repository.PostgresRepository
	if srv.postgresDB != nil {
		repo = resultPostgre.New(srv.postgresDB, srv.l)
	}

	srv.resultUC = resultUsecase.New(repo, srv.engineClient, srv.l)

	handler := resulthttp.New(srv.l, srv.resultUC, srv.discord)
	handler.RegisterRoutes(api, mw)
}
