package httpserver

import (
	"context"

	"dealflow-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.config)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	api := srv.gin.Group("/api/v1")

	// Result first: the report search engine reads through it.
	srv.setupResultDomain(api, mw)
	srv.setupReportDomain(api, mw)
	srv.setupAnalysisDomain(api, mw)
	srv.setupPreferenceDomain(api, mw)
	srv.setupMandateDomain(api, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.RequestID())

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost and private subnets)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
