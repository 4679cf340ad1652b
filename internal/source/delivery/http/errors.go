package http

import (
	"errors"
	"net/http"

	"analytics-srv/internal/source"
	pkgErrors "analytics-srv/pkg/errors"
)

var (
	errSourceNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "Source not found")
	errNameRequired     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Source name is required")
	errInvalidStatus    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid source status")
	errInvalidColor     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Color must be a hex value like #1da1f2")
	errInvalidField     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Each field needs a label or id")
	errInvalidFieldType = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid field type")
	errDuplicateFieldID = pkgErrors.NewHTTPError(http.StatusBadRequest, "Field ids must be unique within a source")
	errForbidden        = pkgErrors.NewHTTPError(http.StatusForbidden, "You are not allowed to modify sources")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, source.ErrSourceNotFound):
		return errSourceNotFound
	case errors.Is(err, source.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, source.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, source.ErrInvalidColor):
		return errInvalidColor
	case errors.Is(err, source.ErrInvalidField):
		return errInvalidField
	case errors.Is(err, source.ErrInvalidFieldType):
		return errInvalidFieldType
	case errors.Is(err, source.ErrDuplicateFieldID):
		return errDuplicateFieldID
	case errors.Is(err, source.ErrForbidden):
		return errForbidden
	default:
		panic(err)
	}
}

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
)
