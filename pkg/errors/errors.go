package errors

import "fmt"

// HTTPError is an error that carries the HTTP status and the message shown to clients.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError whose error code equals its HTTP status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		Code:       statusCode,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned when request binding fails on one or more fields.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s %s", v[0].Field, v[0].Message)
}
