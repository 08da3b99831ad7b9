package http

import (
	"errors"

	"dealflow-srv/internal/report"
	pkgErrors "dealflow-srv/pkg/errors"
)

var (
	errInvalidDate = pkgErrors.NewHTTPError(400, "Invalid date bound, expected YYYY-MM-DD")
	errListFailed  = pkgErrors.NewHTTPError(500, "Failed to list reports")
	errInvalidBody = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, report.ErrListFailed):
		return errListFailed
	default:
		return errInvalidBody
	}
}
