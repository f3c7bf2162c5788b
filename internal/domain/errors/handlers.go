package errors

import "fieldops/internal/errors"

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// Info converts err to its wire representation, falling back to ErrInternalError.
func Info(err error) ErrorInfo {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = ErrInternalError.WithDetails(err.Error())
	}

	return ErrorInfo{
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
		Details: appErr.Details(),
	}
}
