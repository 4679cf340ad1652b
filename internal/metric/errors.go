package metric

import "errors"

var (
	ErrMetricNotFound         = errors.New("metric mapping not found")
	ErrNameRequired           = errors.New("metric mapping name is required")
	ErrInvalidCalculationType = errors.New("invalid calculation type")
	ErrSourceMetricsRequired  = errors.New("at least one source metric is required")
	ErrUnknownSourceMetric    = errors.New("source metric references an unknown source or field")
	ErrFormulaRequired        = errors.New("custom formula is required")
	ErrInvalidFormula         = errors.New("invalid custom formula")
	ErrForbidden              = errors.New("not allowed to modify metric mappings")
)
