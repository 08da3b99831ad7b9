package httpserver

import (
	"dealflow-srv/internal/middleware"
	reporthttp "dealflow-srv/internal/report/delivery/http"
	reportUsecase "dealflow-srv/internal/report/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupReportDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	uc := reportUsecase.New(srv.resultUC, srv.l)

	handler := reporthttp.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(api, mw)
}
