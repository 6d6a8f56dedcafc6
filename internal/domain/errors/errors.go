package errors

import (
	"net/http"

	"pos/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches errors with the same error code, so WithDetails copies still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must not be negative",
		"",
	)

	// Basket-related errors
	ErrBasketPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"BASKET_PERSIST_FAILED",
		"Failed to save basket",
		"",
	)

	ErrBasketReadFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"BASKET_READ_FAILED",
		"Failed to read basket",
		"",
	)

	// Session-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired session",
		"",
	)

	ErrRoleNotPermitted = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_PERMITTED",
		"Your account role is not permitted to use this app",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// StorageError reports a failed read or write against a basket storage backend.
type StorageError struct {
	backend string
	op      string
	err     error
}

// NewStorageError wraps err from the named backend ("postgres", "redis") and operation.
func NewStorageError(backend, op string, err error) AppError {
	return &StorageError{backend: backend, op: op, err: err}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrapf(e.err, "%s %s failed", e.backend, e.op).Error()
}

// Unwrap exposes the driver error.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Basket storage is unavailable"
}

// Details returns the backend and operation that failed.
func (e *StorageError) Details() string {
	return e.backend + " " + e.op
}
