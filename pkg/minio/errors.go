package minio

import "fmt"

// InvalidInputError reports a rejected request parameter.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// NewInvalidInputError creates a new InvalidInputError.
func NewInvalidInputError(reason string) error {
	return &InvalidInputError{Reason: reason}
}

// ConnectionError reports a failure to reach the object store.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("minio connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError creates a new ConnectionError.
func NewConnectionError(err error) error {
	return &ConnectionError{Err: err}
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("minio %s failed: %w", operation, err)
}
