package http

import (
	"errors"

	"dealflow-srv/internal/analysis"
	pkgErrors "dealflow-srv/pkg/errors"
)

var (
	errInvalidForm  = pkgErrors.NewHTTPError(400, "Invalid upload form")
	errNoJobID      = pkgErrors.NewHTTPError(400, "Job ID is required")
	errEngineFailed = pkgErrors.NewHTTPError(502, "Analysis engine request failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrNoJobID):
		return errNoJobID
	case errors.Is(err, analysis.ErrEngineFailed):
		return errEngineFailed
	default:
		panic(err)
	}
}
