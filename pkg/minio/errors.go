package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeConnection   = "CONNECTION"
	ErrCodePermission   = "PERMISSION"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnknown      = "UNKNOWN"
)

// StorageError classifies object-store failures.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Operation == "" {
		return "minio: " + e.Message
	}
	return fmt.Sprintf("minio %s: %s", e.Operation, e.Message)
}

func invalidInput(msg string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: msg}
}

// IsNotFound reports whether err means the bucket or object is missing.
func IsNotFound(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Code == ErrCodeNotFound
}

// classify wraps a minio-go error. It returns nil for a nil err.
func classify(err error, operation string) error {
	if err == nil {
		return nil
	}
	se := &StorageError{Operation: operation, Cause: err}
	switch code := minio.ToErrorResponse(err).Code; code {
	case "NoSuchBucket", "NoSuchKey":
		se.Code, se.Message = ErrCodeNotFound, "not found"
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		se.Code, se.Message = ErrCodePermission, "access denied"
	case "":
		se.Code, se.Message = ErrCodeConnection, err.Error()
	default:
		se.Code, se.Message = ErrCodeUnknown, code
	}
	return se
}
