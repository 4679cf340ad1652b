package http

import (
	"errors"
	"net/http"

	"analytics-srv/internal/report"
	pkgErrors "analytics-srv/pkg/errors"
)

var (
	errReportNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Report not found")
	errRunNotFound        = pkgErrors.NewHTTPError(http.StatusNotFound, "Report run not found")
	errRunNotCompleted    = pkgErrors.NewHTTPError(http.StatusConflict, "Report run is not completed yet")
	errNameRequired       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Report name is required")
	errWidgetsRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "A report needs at least one widget")
	errInvalidWidget      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid report widget")
	errInvalidTimeRange   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid report time range")
	errInvalidFormat      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid report format")
	errUnsupportedFormat  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Report format is not supported yet")
	errFormatNotAvailable = pkgErrors.NewHTTPError(http.StatusNotFound, "Run has no file in that format")
	errInvalidSchedule    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid report schedule")
	errInvalidRecipient   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid schedule recipient")
	errUnknownMetric      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Widget references an unknown metric")
	errForbidden          = pkgErrors.NewHTTPError(http.StatusForbidden, "You are not allowed to modify this report")
	errGenerationFailed   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Report generation failed")
	errDownloadURLFailed  = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to generate download URL")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrRunNotFound):
		return errRunNotFound
	case errors.Is(err, report.ErrRunNotCompleted):
		return errRunNotCompleted
	case errors.Is(err, report.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, report.ErrWidgetsRequired):
		return errWidgetsRequired
	case errors.Is(err, report.ErrInvalidWidget):
		return errInvalidWidget
	case errors.Is(err, report.ErrInvalidTimeRange):
		return errInvalidTimeRange
	case errors.Is(err, report.ErrInvalidFormat):
		return errInvalidFormat
	case errors.Is(err, report.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, report.ErrFormatNotAvailable):
		return errFormatNotAvailable
	case errors.Is(err, report.ErrInvalidSchedule):
		return errInvalidSchedule
	case errors.Is(err, report.ErrInvalidRecipient):
		return errInvalidRecipient
	case errors.Is(err, report.ErrUnknownMetric):
		return errUnknownMetric
	case errors.Is(err, report.ErrForbidden):
		return errForbidden
	case errors.Is(err, report.ErrGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, report.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		panic(err)
	}
}

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
	errInvalidNow = pkgErrors.NewHTTPError(http.StatusBadRequest, "now must be an RFC 3339 timestamp")
)
