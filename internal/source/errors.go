package source

import "errors"

var (
	ErrSourceNotFound   = errors.New("source not found")
	ErrNameRequired     = errors.New("source name is required")
	ErrInvalidStatus    = errors.New("invalid source status")
	ErrInvalidColor     = errors.New("invalid source color")
	ErrInvalidField     = errors.New("field needs a label or id")
	ErrInvalidFieldType = errors.New("invalid field type")
	ErrDuplicateFieldID = errors.New("duplicate field id")
	ErrForbidden        = errors.New("not allowed to modify sources")
)
