package dashboard

import "errors"

var (
	ErrDashboardNotFound  = errors.New("dashboard not found")
	ErrNameRequired       = errors.New("dashboard name is required")
	ErrInvalidWidget      = errors.New("widget needs a valid type and at least one metric")
	ErrInvalidTimeRange   = errors.New("invalid widget time range")
	ErrInvalidFilter      = errors.New("invalid widget filter")
	ErrInvalidDisplay     = errors.New("invalid widget display options")
	ErrUnknownMetric      = errors.New("widget references an unknown metric")
	ErrForbidden          = errors.New("not allowed to access this dashboard")
	ErrNoDefaultDashboard = errors.New("no default dashboard")

	// ErrMetricNotFound is reported on a rendered widget, never returned.
	ErrMetricNotFound = errors.New("metric not found")
)
