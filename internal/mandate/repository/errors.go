package repository

import "errors"

var (
	ErrMandateNotFound = errors.New("repository: mandate document not found")
)
