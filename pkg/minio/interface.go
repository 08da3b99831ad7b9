package minio

import (
	"context"
	"net/http"

	"dealflow-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO is the composite interface embedding all sub-interfaces.
type MinIO interface {
	Connection
	FileUploader
	FileManager
}

// Connection defines interface for MinIO connection operations.
type Connection interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// FileUploader defines methods for uploading files.
type FileUploader interface {
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
}

// FileManager defines methods for file metadata and existence checks.
type FileManager interface {
	FileExists(ctx context.Context, bucketName, objectName string) (bool, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
}

// NewMinIO creates a new MinIO client. Returns the MinIO interface.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  disableCompression,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
