package http

import (
	"errors"

	"dealflow-srv/internal/mandate"
	pkgErrors "dealflow-srv/pkg/errors"
)

var (
	errInvalidDocument = pkgErrors.NewHTTPError(400, "Document must be valid JSON")
	errStoreFailed     = pkgErrors.NewHTTPError(500, "Mandate store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, mandate.ErrInvalidDocument):
		return errInvalidDocument
	case errors.Is(err, mandate.ErrStoreFailed):
		return errStoreFailed
	default:
		panic(err)
	}
}
