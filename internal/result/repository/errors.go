package repository

import "errors"

var (
	ErrResultNotFound = errors.New("repository: result not found")
)
