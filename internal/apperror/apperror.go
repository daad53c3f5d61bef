package apperror

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Services return these wrapped in an *AppError;
// the HTTP layer maps them to status codes with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// AppError is a domain error with a human-readable message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation reports a missing or malformed required field.
func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

// Unauthorized reports a missing or invalid bearer token.
func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: message}
}

// Forbidden reports a caller acting on a record they do not own.
func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

// NotFound reports that no record exists for the given id.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}

// Conflict reports a duplicate value for a unique field.
func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}
