package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Persisted analysis results and preferences (optional)
	Postgres PostgresConfig

	// Redis - Session slots, caches
	Redis RedisConfig

	// MinIO - Uploaded deal documents
	MinIO MinIOConfig

	// Kafka - Job lifecycle events (optional)
	Kafka KafkaConfig

	// Backend - Upstream analysis engine (optional; demo mode when unset)
	Backend BackendConfig

	// Upload - Document upload limits and layout
	Upload UploadConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres. An empty Host disables
// the structured store and the service falls back to API-only resolution.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// KafkaConfig is the configuration for Kafka. Empty Brokers disables event
// publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// BackendConfig points at the upstream analysis engine. An empty URL puts
// the service in demo mode: simulated jobs, bundled fixture results.
type BackendConfig struct {
	URL     string
	Timeout int // in seconds
}

// UploadConfig bounds document uploads.
type UploadConfig struct {
	Prefix      string
	MaxFileSize int64 // in bytes
	MaxFiles    int
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("dealflow-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/dealflow/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL - Analysis results, preferences
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Session slots, caches
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO - Uploaded deal documents
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka - Job lifecycle events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Backend - Upstream analysis engine (optional)
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.Timeout = viper.GetInt("backend.timeout")

	// Upload
	cfg.Upload.Prefix = viper.GetString("upload.prefix")
	cfg.Upload.MaxFileSize = viper.GetInt64("upload.max_file_size")
	cfg.Upload.MaxFiles = viper.GetInt("upload.max_files")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL (empty host keeps the structured store off)
	viper.SetDefault("postgres.host", "")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "dealflow-documents")

	// 4. Kafka (empty brokers keep publishing off)
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "analysis.jobs")

	// 5. Backend (empty URL means demo mode)
	viper.SetDefault("backend.url", "")
	viper.SetDefault("backend.timeout", 30)

	// 6. Upload
	viper.SetDefault("upload.prefix", "deals")
	viper.SetDefault("upload.max_file_size", 100*1024*1024) // 100 MB
	viper.SetDefault("upload.max_files", 20)
}

func validate(cfg *Config) error {
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Postgres is optional; when enabled it must be complete.
	if cfg.Postgres.Host != "" {
		if cfg.Postgres.Port == 0 {
			return fmt.Errorf("postgres.port is required")
		}
		if cfg.Postgres.DBName == "" {
			return fmt.Errorf("postgres.dbname is required")
		}
		if cfg.Postgres.User == "" {
			return fmt.Errorf("postgres.user is required")
		}
	}

	// Validate MinIO Configuration
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	// Kafka is optional; when enabled it must name a topic.
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when brokers are set")
	}

	if cfg.Backend.URL != "" && cfg.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be greater than 0")
	}

	if cfg.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("upload.max_file_size must be greater than 0")
	}
	if cfg.Upload.MaxFiles <= 0 {
		return fmt.Errorf("upload.max_files must be greater than 0")
	}

	return nil
}

// DemoMode reports whether the service runs without an upstream analysis
// engine and should simulate job progress locally.
func (c *Config) DemoMode() bool {
	return c.Backend.URL == ""
}

// PostgresEnabled reports whether the structured store is configured.
func (c *Config) PostgresEnabled() bool {
	return c.Postgres.Host != ""
}

// KafkaEnabled reports whether job event publishing is configured.
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
