package http

import (
	"errors"
	"net/http"

	"qr-menu/internal/catalog"
	pkgErrors "qr-menu/pkg/errors"
)

var (
	errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything not listed here is reported as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrTagNotFound),
		errors.Is(err, catalog.ErrFilterNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, catalog.ErrInvalidPredicate):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, catalog.ErrInvalidPayload),
		errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, catalog.ErrUnknownTag),
		errors.Is(err, catalog.ErrInvalidTagKey),
		errors.Is(err, catalog.ErrInvalidTagType),
		errors.Is(err, catalog.ErrInvalidFilterKey),
		errors.Is(err, catalog.ErrInvalidFilterType),
		errors.Is(err, catalog.ErrInvalidOrder):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, catalog.ErrDuplicateTagKey),
		errors.Is(err, catalog.ErrDuplicateFilter),
		errors.Is(err, catalog.ErrReservedFilterKey),
		errors.Is(err, catalog.ErrCategoryInUse):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())

	default:
		return pkgErrors.ErrInternalServerError
	}
}
