package users

import (
	"errors"
	"fmt"
)

// Error types for user operations. Expected failures (bad input, unknown id,
// uniqueness conflicts) are returned as values so handlers can translate them;
// anything else is treated as a server error.

// Validation error codes, used as the "error" field of the response envelope.
const (
	ValidationErrorMissingInput = "Missing input"
	ValidationErrorRowIDMissing = "Row id missing"
	ValidationErrorMissingField = "Missing field"
)

// ValidationError represents a missing or empty required input field
type ValidationError struct {
	Code   string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Code, e.Detail)
}

// NewValidationError creates a new validation error
func NewValidationError(code, detail string) *ValidationError {
	return &ValidationError{
		Code:   code,
		Detail: detail,
	}
}

// NotFoundError represents a reference to a user id that does not exist
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %d not found", e.ID)
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(id int64) *NotFoundError {
	return &NotFoundError{ID: id}
}

// ConflictError represents a storage-level constraint violation, such as a
// duplicate user_name. The driver message is preserved in Detail because
// clients pattern-match it to build their own messages.
type ConflictError struct {
	Detail string
	Cause  error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("constraint violation: %s", e.Detail)
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}

// NewConflictError creates a new conflict error wrapping the driver error
func NewConflictError(cause error) *ConflictError {
	return &ConflictError{
		Detail: cause.Error(),
		Cause:  cause,
	}
}

// AsValidationError reports whether err is a ValidationError
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsNotFoundError reports whether err is a NotFoundError
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nfe *NotFoundError
	ok := errors.As(err, &nfe)
	return nfe, ok
}

// AsConflictError reports whether err is a ConflictError
func AsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}
