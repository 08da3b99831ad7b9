package report

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date bound")
	ErrListFailed  = errors.New("failed to list reports")
)
