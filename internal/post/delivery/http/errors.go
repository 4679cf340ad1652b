package http

import (
	"errors"
	"net/http"

	"analytics-srv/internal/post"
	pkgErrors "analytics-srv/pkg/errors"
)

var (
	errPostNotFound            = pkgErrors.NewHTTPError(http.StatusNotFound, "Post not found")
	errTitleRequired           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Post title is required")
	errInvalidDate             = pkgErrors.NewHTTPError(http.StatusBadRequest, "Date must be formatted as YYYY-MM-DD")
	errInvalidDateRange        = pkgErrors.NewHTTPError(http.StatusBadRequest, "The end date must not be before the start date")
	errInvalidStatus           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid post status")
	errInvalidStatusTransition = pkgErrors.NewHTTPError(http.StatusConflict, "Post status cannot move backwards")
	errSourceNotFound          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Source not found")
	errUnknownMetricField      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Metric is not a field of the post's source")
	errInvalidMetricValue      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Metric value does not match the field type")
	errForbidden               = pkgErrors.NewHTTPError(http.StatusForbidden, "You are not allowed to modify posts")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		return errPostNotFound
	case errors.Is(err, post.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, post.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, post.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, post.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, post.ErrInvalidStatusTransition):
		return errInvalidStatusTransition
	case errors.Is(err, post.ErrSourceNotFound):
		return errSourceNotFound
	case errors.Is(err, post.ErrUnknownMetricField):
		return errUnknownMetricField
	case errors.Is(err, post.ErrInvalidMetricValue):
		return errInvalidMetricValue
	case errors.Is(err, post.ErrForbidden):
		return errForbidden
	default:
		panic(err)
	}
}

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
)
