package httpserver

import (
	"dealflow-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Dealflow API up and running"
	HealthVersion = "1.0.0"
	ServiceName   = "dealflow-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests (Redis and object storage
// always, Postgres when the structured store is configured).
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redisClient.Ping(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Redis connection failed",
			"error":   err.Error(),
		})
		return
	}

	if err := srv.minioClient.HealthCheck(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Object storage connection failed",
			"error":   err.Error(),
		})
		return
	}

	database := "not configured"
	if srv.postgresDB != nil {
		if err := srv.postgresDB.PingContext(ctx); err != nil {
			c.JSON(503, gin.H{
				"status":  "not ready",
				"message": "Database connection failed",
				"error":   err.Error(),
			})
			return
		}
		database = "connected"
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": database,
		"redis":    "connected",
		"storage":  "connected",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
