package http

import (
	"errors"

	"dealflow-srv/internal/preference"
	pkgErrors "dealflow-srv/pkg/errors"
)

var (
	errInvalidPrefs = pkgErrors.NewHTTPError(400, "Invalid preference values")
	errInvalidBody  = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, preference.ErrInvalidPrefs):
		return errInvalidPrefs
	default:
		return errInvalidBody
	}
}
