package repository

import "errors"

var (
	ErrSourceNotFound     = errors.New("repository: source not found")
	ErrSourceCreateFailed = errors.New("repository: failed to create source")
	ErrSourceUpdateFailed = errors.New("repository: failed to update source")
)
