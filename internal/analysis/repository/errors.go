package repository

import "errors"

var (
	ErrJobNotFound = errors.New("repository: job not found")
)
