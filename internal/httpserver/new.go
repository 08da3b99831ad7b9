package httpserver

import (
	"database/sql"
	"errors"

	"dealflow-srv/config"
	"dealflow-srv/internal/result"
	"dealflow-srv/pkg/discord"
	"dealflow-srv/pkg/enginesrv"
	"dealflow-srv/pkg/kafka"
	"dealflow-srv/pkg/log"
	"dealflow-srv/pkg/minio"
	pkgRedis "dealflow-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Storage Configuration
	postgresDB  *sql.DB // nil when the structured store is not configured
	redisClient pkgRedis.IRedis
	minioClient minio.MinIO

	// Upstream & Messaging Configuration
	engineClient enginesrv.IEngine // nil in demo mode
	producer     kafka.IProducer   // nil when event publishing is off

	// Shared usecases
	resultUC result.UseCase

	config *config.Config

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Storage Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis
	MinIOClient minio.MinIO

	// Upstream & Messaging Configuration
	EngineClient enginesrv.IEngine
	Producer     kafka.IProducer

	Config *config.Config

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		minioClient: cfg.MinIOClient,

		engineClient: cfg.EngineClient,
		producer:     cfg.Producer,

		config: cfg.Config,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided. Postgres,
// the engine client and the producer are optional.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}

	return nil
}
