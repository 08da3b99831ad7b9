package usecase

import (
	"sync"
	"time"

	"dealflow-srv/internal/analysis"
	"dealflow-srv/internal/analysis/repository"
	"dealflow-srv/pkg/enginesrv"
	"dealflow-srv/pkg/kafka"
	"dealflow-srv/pkg/log"
	"dealflow-srv/pkg/minio"
)

const (
	defaultUploadPrefix = "deals"
	defaultMaxFileSize  = 100 * 1024 * 1024 // 100 MB
)

// Config holds configuration for job starts and uploads.
type Config struct {
	Bucket       string
	UploadPrefix string
	MaxFileSize  int64
}

type implUseCase struct {
	jobs     repository.JobRepository
	storage  minio.MinIO
	engine   enginesrv.IEngine // nil in demo mode
	producer kafka.IProducer   // nil when event publishing is off
	sim      *simulator
	l        log.Logger
	config   Config

	watcherMu  sync.Mutex
	watchers   map[string]*watcherHandle
	watchEvery time.Duration
}

// New creates a new analysis UseCase implementation. The engine and
// producer are optional.
func New(
	jobs repository.JobRepository,
	storage minio.MinIO,
	engine enginesrv.IEngine,
	producer kafka.IProducer,
	l log.Logger,
	cfg Config,
) analysis.UseCase {
	if cfg.UploadPrefix == "" {
		cfg.UploadPrefix = defaultUploadPrefix
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = defaultMaxFileSize
	}

	return &implUseCase{
		jobs:       jobs,
		storage:    storage,
		engine:     engine,
		producer:   producer,
		sim:        newSimulator(jobs),
		l:          l,
		config:     cfg,
		watchers:   make(map[string]*watcherHandle),
		watchEvery: watchInterval,
	}
}
