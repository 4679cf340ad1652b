package post

import "errors"

var (
	ErrPostNotFound            = errors.New("post not found")
	ErrTitleRequired           = errors.New("post title is required")
	ErrInvalidDate             = errors.New("post date must be YYYY-MM-DD")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidStatus           = errors.New("invalid post status")
	ErrInvalidStatusTransition = errors.New("post status cannot move backwards")
	ErrSourceNotFound          = errors.New("source not found")
	ErrUnknownMetricField      = errors.New("unknown metric field")
	ErrInvalidMetricValue      = errors.New("invalid metric value")
	ErrForbidden               = errors.New("not allowed to modify posts")
)
