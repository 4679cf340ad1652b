package repository

import "errors"

var (
	ErrMetricNotFound     = errors.New("repository: metric mapping not found")
	ErrMetricCreateFailed = errors.New("repository: failed to create metric mapping")
	ErrMetricUpdateFailed = errors.New("repository: failed to update metric mapping")
)
