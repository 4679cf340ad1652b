package http

import (
	"errors"
	"net/http"

	"analytics-srv/internal/dashboard"
	pkgErrors "analytics-srv/pkg/errors"
)

var (
	errDashboardNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "Dashboard not found")
	errNoDefaultDashboard = pkgErrors.NewHTTPError(http.StatusNotFound, "No default dashboard")
	errNameRequired       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Dashboard name is required")
	errInvalidWidget      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Each widget needs a valid type and at least one metric")
	errInvalidTimeRange   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid widget time range")
	errInvalidFilter      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid widget filter")
	errInvalidDisplay     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid widget display options")
	errUnknownMetric      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Widget references an unknown metric")
	errForbidden          = pkgErrors.NewHTTPError(http.StatusForbidden, "You are not allowed to access this dashboard")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrDashboardNotFound):
		return errDashboardNotFound
	case errors.Is(err, dashboard.ErrNoDefaultDashboard):
		return errNoDefaultDashboard
	case errors.Is(err, dashboard.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, dashboard.ErrInvalidWidget):
		return errInvalidWidget
	case errors.Is(err, dashboard.ErrInvalidTimeRange):
		return errInvalidTimeRange
	case errors.Is(err, dashboard.ErrInvalidFilter):
		return errInvalidFilter
	case errors.Is(err, dashboard.ErrInvalidDisplay):
		return errInvalidDisplay
	case errors.Is(err, dashboard.ErrUnknownMetric):
		return errUnknownMetric
	case errors.Is(err, dashboard.ErrForbidden):
		return errForbidden
	default:
		panic(err)
	}
}

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
	errInvalidNow = pkgErrors.NewHTTPError(http.StatusBadRequest, "now must be an RFC 3339 timestamp")
)
