package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	Environment    string
	AllowedOrigins []string
}

// DefaultCORSConfig returns the CORS policy for the given environment.
// Outside production any localhost or private-subnet origin is accepted so
// local front-end development works without extra configuration.
func DefaultCORSConfig(environment string) CORSConfig {
	return CORSConfig{
		Environment: environment,
		AllowedOrigins: []string{
			"https://app.dealflow.example.com",
		},
	}
}

// CORS handles cross-origin requests, including preflight.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	strict := cfg.Environment == "production"

	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (allowed[origin] || (!strict && isLocalOrigin(origin))) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func isLocalOrigin(origin string) bool {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(origin, "http://"), "https://")
	host := trimmed
	if i := strings.IndexByte(trimmed, ':'); i >= 0 {
		host = trimmed[:i]
	}

	return host == "localhost" ||
		host == "127.0.0.1" ||
		strings.HasPrefix(host, "192.168.") ||
		strings.HasPrefix(host, "10.")
}
