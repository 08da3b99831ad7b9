package redis

import (
	"errors"
	"time"
)

const (
	// DefaultConnectTimeout is the maximum time to wait for the initial connection.
	DefaultConnectTimeout = 5 * time.Second
)

var (
	// ErrHostRequired is returned when the host is missing from the config.
	ErrHostRequired = errors.New("redis host is required")
	// ErrInvalidPort is returned when the port is out of range.
	ErrInvalidPort = errors.New("redis port must be between 1 and 65535")
	// ErrNotFound is returned by Get when the key does not exist.
	ErrNotFound = errors.New("redis key not found")
)
