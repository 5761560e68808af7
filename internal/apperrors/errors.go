package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the requested state transition is not allowed
// (e.g. finalizing a transaction that already reached a terminal status).
var ErrConflict = errors.New("conflicting state")

// ErrConfiguration indicates an operational misconfiguration, such as a
// missing system wallet for an active asset type.
var ErrConfiguration = errors.New("configuration error")

// ErrInvalidAsset indicates an unknown or inactive asset type code.
var ErrInvalidAsset = errors.New("invalid asset type")

// ErrInvariant indicates a broken storage invariant, such as a balance update
// that would take a wallet below zero.
var ErrInvariant = errors.New("invariant violation")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with a status code and a message that is
// safe to log. Repositories use it for unexpected storage failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
