package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrRunNotFound        = errors.New("report run not found")
	ErrRunNotCompleted    = errors.New("report run is not completed")
	ErrNameRequired       = errors.New("name is required")
	ErrWidgetsRequired    = errors.New("at least one widget is required")
	ErrInvalidWidget      = errors.New("invalid widget")
	ErrInvalidTimeRange   = errors.New("invalid time range")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrUnsupportedFormat  = errors.New("format is not supported")
	ErrFormatNotAvailable = errors.New("format was not rendered for this run")
	ErrInvalidSchedule    = errors.New("invalid schedule")
	ErrInvalidRecipient   = errors.New("invalid recipient")
	ErrUnknownMetric      = errors.New("unknown metric")
	ErrMetricNotFound     = errors.New("metric not found")
	ErrForbidden          = errors.New("forbidden")
	ErrGenerationFailed   = errors.New("report generation failed")
	ErrDownloadURLFailed  = errors.New("failed to generate download URL")
)
