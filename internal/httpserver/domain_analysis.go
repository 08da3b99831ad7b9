package httpserver

import (
	analysishttp "dealflow-srv/internal/analysis/delivery/http"
	analysisRedis "dealflow-srv/internal/analysis/repository/redis"
	analysisUsecase "dealflow-srv/internal/analysis/usecase"
	"dealflow-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupAnalysisDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	jobRepo := analysisRedis.New(srv.redisClient, srv.l)

	uc := analysisUsecase.New(jobRepo, srv.minioClient, srv.engineClient, srv.producer, srv.l, analysisUsecase.Config{
		Bucket:       srv.config.MinIO.Bucket,
		UploadPrefix: srv.config.Upload.Prefix,
		MaxFileSize:  srv.config.Upload.MaxFileSize,
	})

	handler := analysishttp.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(api, mw)
}
