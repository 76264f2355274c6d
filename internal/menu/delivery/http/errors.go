package http

import (
	"errors"
	"net/http"

	"qr-menu/internal/menu"
	pkgErrors "qr-menu/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, menu.ErrInvalidDraft):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
