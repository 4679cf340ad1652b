package repository

import "errors"

var (
	ErrDashboardNotFound     = errors.New("repository: dashboard not found")
	ErrDashboardCreateFailed = errors.New("repository: failed to create dashboard")
	ErrDashboardUpdateFailed = errors.New("repository: failed to update dashboard")
)
