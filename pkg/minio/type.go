package minio

import (
	"io"
	"sync"
	"time"

	"dealflow-srv/config"

	"github.com/minio/minio-go/v7"
)

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	mu          sync.RWMutex
	connected   bool
}

// FileInfo represents metadata about a file stored in MinIO.
type FileInfo struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	OriginalName string            `json:"original_name"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"last_modified"`
	Metadata     map[string]string `json:"metadata"`
}

// UploadRequest contains the parameters for uploading a file to MinIO.
type UploadRequest struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	OriginalName string            `json:"original_name"`
	Reader       io.Reader         `json:"-"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	Metadata     map[string]string `json:"metadata"`
}
