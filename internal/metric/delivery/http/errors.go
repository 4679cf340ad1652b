package http

import (
	"errors"
	"net/http"

	"analytics-srv/internal/metric"
	pkgErrors "analytics-srv/pkg/errors"
)

var (
	errMetricNotFound         = pkgErrors.NewHTTPError(http.StatusNotFound, "Metric not found")
	errNameRequired           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Metric name is required")
	errInvalidCalculationType = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid calculation type")
	errSourceMetricsRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Select at least one source metric")
	errUnknownSourceMetric    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Source metric references an unknown source or field")
	errFormulaRequired        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Custom formula is required")
	errInvalidFormula         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Formula may only use numbers, + - * / ( ), metric1..metricN and totalImpressions")
	errForbidden              = pkgErrors.NewHTTPError(http.StatusForbidden, "You are not allowed to modify metrics")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, metric.ErrMetricNotFound):
		return errMetricNotFound
	case errors.Is(err, metric.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, metric.ErrInvalidCalculationType):
		return errInvalidCalculationType
	case errors.Is(err, metric.ErrSourceMetricsRequired):
		return errSourceMetricsRequired
	case errors.Is(err, metric.ErrUnknownSourceMetric):
		return errUnknownSourceMetric
	case errors.Is(err, metric.ErrFormulaRequired):
		return errFormulaRequired
	case errors.Is(err, metric.ErrInvalidFormula):
		return errInvalidFormula
	case errors.Is(err, metric.ErrForbidden):
		return errForbidden
	default:
		panic(err)
	}
}

var (
	errWrongBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "Dates must be formatted as YYYY-MM-DD")
	errInvalidNow  = pkgErrors.NewHTTPError(http.StatusBadRequest, "now must be an RFC 3339 timestamp")
)
