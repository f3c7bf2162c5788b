package errors

import (
	"fmt"
	"net/http"

	"fieldops/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so that
// errors.Is(err, ErrNotFound) holds for copies made by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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
	// Input validation errors, raised before any I/O.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Device-access errors
	ErrDevicePermissionDenied = NewBaseError(
		http.StatusForbidden,
		"DEVICE_PERMISSION_DENIED",
		"Device access was denied",
		"",
	)

	ErrDeviceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DEVICE_UNAVAILABLE",
		"Device is not available",
		"",
	)

	ErrDeviceFailed = NewBaseError(
		http.StatusBadGateway,
		"DEVICE_FAILED",
		"Device failed",
		"",
	)

	// Capture workflow errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"Action is not allowed in the current step",
		"",
	)

	ErrLocationCreateFailed = NewBaseError(
		http.StatusBadGateway,
		"LOCATION_CREATE_FAILED",
		"Failed to create the location",
		"",
	)

	ErrRecordCreateFailed = NewBaseError(
		http.StatusBadGateway,
		"RECORD_CREATE_FAILED",
		"Failed to create the record",
		"",
	)

	ErrPhotoUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"PHOTO_UPLOAD_FAILED",
		"Record was created but its photos could not be uploaded",
		"",
	)

	// Report errors
	ErrPhotoFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"PHOTO_FETCH_FAILED",
		"Failed to load a photo for the document",
		"",
	)

	// Backup errors
	ErrRestoreInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESTORE_INVALID",
		"Backup file is invalid",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILED",
		"Failed to access application state",
		"",
	)
)

// BackendError represents a failed call to the backend, implementing the AppError interface
type BackendError struct {
	status int
	detail string
	err    error
}

// NewBackendError creates a backend error from a non-success response.
// detail is the backend's structured message and may be empty.
func NewBackendError(status int, detail string) *BackendError {
	return &BackendError{status: status, detail: detail}
}

// NewBackendTransportError creates a backend error for a call that produced no response.
func NewBackendTransportError(err error) *BackendError {
	return &BackendError{err: err}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	if e.err != nil {
		return errors.Wrap(e.err, "backend request failed").Error()
	}

	return e.Message()
}

// Unwrap returns the transport error, if any.
func (e *BackendError) Unwrap() error {
	return e.err
}

// Status returns the backend HTTP status, zero for transport failures.
func (e *BackendError) Status() int {
	return e.status
}

// HTTPCode mirrors client errors of the backend and maps everything else to 502.
func (e *BackendError) HTTPCode() int {
	switch e.status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
		return e.status
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message prefers the backend-provided detail over a generic status message.
func (e *BackendError) Message() string {
	if e.detail != "" {
		return e.detail
	}

	if e.status == 0 {
		return "backend is unreachable"
	}

	return fmt.Sprintf("request failed with status %d", e.status)
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	if e.err != nil {
		return e.err.Error()
	}

	return ""
}

// StoreError represents a failed application-state read or write, implementing the AppError interface
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a store-related error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "store access failed").Error()
}

// Unwrap returns the driver error.
func (e *StoreError) Unwrap() error {
	return e.err
}

// Is matches ErrStoreFailed.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == ErrStoreFailed.errorCode
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return ErrStoreFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return ErrStoreFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return ErrStoreFailed.Message()
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}
