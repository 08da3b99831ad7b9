package minio

import (
	"strings"

	"dealflow-srv/config"
)

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return NewInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}
