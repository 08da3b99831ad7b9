package minio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// Connect verifies the object store is reachable and ensures the configured
// bucket exists, creating it when missing.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	if !exists {
		if err := m.minioClient.MakeBucket(ctx, m.config.Bucket, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
			m.connected = false
			return handleMinIOError(err, "create_bucket")
		}
	}
	m.connected = true
	return nil
}

// HealthCheck verifies the connection is alive.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

// Close marks the client as disconnected.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// UploadFile uploads a single object.
func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		OriginalName: req.OriginalName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		Metadata:     req.Metadata,
	}, nil
}

// FileExists checks whether an object exists.
func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	if bucketName == "" || objectName == "" {
		return false, NewInvalidInputError("bucket and object name are required")
	}
	_, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, handleMinIOError(err, "stat_object")
	}
	return true, nil
}

// DeleteFile removes an object.
func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if bucketName == "" || objectName == "" {
		return NewInvalidInputError("bucket and object name are required")
	}
	return handleMinIOError(m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}), "delete_file")
}

func validateUploadRequest(req *UploadRequest) error {
	if req.BucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if req.ObjectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if strings.HasPrefix(req.ObjectName, "/") || strings.HasSuffix(req.ObjectName, "/") {
		return NewInvalidInputError("object name cannot start or end with '/'")
	}
	if req.Reader == nil {
		return NewInvalidInputError("reader is required")
	}
	if req.Size <= 0 {
		return NewInvalidInputError("size must be positive")
	}
	if req.Size > MaxFileSizeBytes {
		return NewInvalidInputError("file size cannot exceed 512MB")
	}
	return nil
}
