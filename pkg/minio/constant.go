package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
)

const (
	// MaxFileSizeBytes is the maximum upload file size (512MB).
	MaxFileSizeBytes = 512 * 1024 * 1024
	// DefaultEndpointPort is appended to the endpoint if no port is given.
	DefaultEndpointPort = ":9000"
)
