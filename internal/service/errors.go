package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrProductCodeExists = errors.New("product code already exists")
	ErrProductInUse      = errors.New("product has sell-in or sell-through records")
	ErrValidation        = errors.New("validation failed")
	ErrBadRequest        = errors.New("bad request")
	ErrBulkTooLarge      = errors.New("batch limit exceeded")
	ErrUnsupportedFile   = errors.New("unsupported file type")
)

// ValidationError 字段级校验错误，errors.Is(err, ErrValidation) 为 true
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
