package http

import (
	"errors"

	"dealflow-srv/internal/result"
	pkgErrors "dealflow-srv/pkg/errors"
)

var (
	errEngineFailed = pkgErrors.NewHTTPError(502, "Analysis engine request failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, result.ErrEngineFailed):
		return errEngineFailed
	default:
		panic(err)
	}
}
