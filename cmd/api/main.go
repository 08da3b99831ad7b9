package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealflow-srv/config"
	configKafka "dealflow-srv/config/kafka"
	configMinio "dealflow-srv/config/minio"
	configPostgre "dealflow-srv/config/postgre"
	configRedis "dealflow-srv/config/redis"
	"dealflow-srv/internal/httpserver"
	"dealflow-srv/pkg/discord"
	"dealflow-srv/pkg/enginesrv"
	pkgHTTP "dealflow-srv/pkg/http"
	"dealflow-srv/pkg/kafka"
	"dealflow-srv/pkg/log"
)

// @title       Dealflow Service API
// @description Backend-for-frontend of the investment analysis web app: document uploads, analysis jobs, results, reports, preferences and mandate onboarding.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	ctx := context.Background()

	// 4. Initialize PostgreSQL (optional; demo mode works without it)
	var postgresDB *sql.DB
	if cfg.PostgresEnabled() {
		postgresDB, err = configPostgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer configPostgre.Disconnect(ctx, postgresDB)
		logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	} else {
		logger.Infof(ctx, "PostgreSQL not configured, structured store disabled")
	}

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 7. Initialize Kafka producer (optional)
	var producer kafka.IProducer
	if cfg.KafkaEnabled() {
		producer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect Kafka producer: ", err)
			return
		}
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		logger.Infof(ctx, "Kafka not configured, job events disabled")
	}

	// 8. Initialize analysis engine client (optional; demo mode when unset)
	var engineClient enginesrv.IEngine
	if !cfg.DemoMode() {
		engineClient = enginesrv.New(enginesrv.EngineConfig{
			BaseURL: cfg.Backend.URL,
			HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
				Timeout: time.Duration(cfg.Backend.Timeout) * time.Second,
			}),
		})
		logger.Infof(ctx, "Analysis engine client initialized for %s", cfg.Backend.URL)
	} else {
		logger.Infof(ctx, "No analysis backend configured, running in demo mode")
	}

	// 9. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		MinIOClient: minioClient,

		EngineClient: engineClient,
		Producer:     producer,

		Config: cfg,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
