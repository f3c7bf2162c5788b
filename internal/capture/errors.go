package capture

import (
	"fmt"

	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
)

// submissionError carries the backend cause of a failed submission step.
type submissionError struct {
	base *domainerrors.BaseError
	err  error
}

func (e *submissionError) HTTPCode() int     { return e.base.HTTPCode() }
func (e *submissionError) ErrorCode() string { return e.base.ErrorCode() }
func (e *submissionError) Message() string   { return e.base.Message() }
func (e *submissionError) Unwrap() error     { return e.err }

func (e *submissionError) Details() string {
	if appErr, ok := domainerrors.AsAppError(e.err); ok {
		return appErr.Message()
	}

	if e.err != nil {
		return e.err.Error()
	}

	return ""
}

// LocationCreateError means the ad-hoc location could not be created. Nothing
// was stored for the record.
type LocationCreateError struct {
	submissionError
	City string
	Name string
}

func newLocationCreateError(city, name string, err error) *LocationCreateError {
	return &LocationCreateError{
		submissionError: submissionError{base: domainerrors.ErrLocationCreateFailed, err: err},
		City:            city,
		Name:            name,
	}
}

func (e *LocationCreateError) Error() string {
	return fmt.Sprintf("create location %q in %s: %v", e.Name, e.City, e.err)
}

// RecordCreateError means the record was not stored. No photo was uploaded.
type RecordCreateError struct {
	submissionError
}

func newRecordCreateError(err error) *RecordCreateError {
	return &RecordCreateError{submissionError: submissionError{base: domainerrors.ErrRecordCreateFailed, err: err}}
}

func (e *RecordCreateError) Error() string {
	return fmt.Sprintf("create record: %v", e.err)
}

// PhotoUploadError means the record exists on the backend but the photos of
// Phase were not attached. A retry uploads the missing phases only.
type PhotoUploadError struct {
	submissionError
	RecordID string
	Phase    entity.Phase
}

func newPhotoUploadError(recordID string, phase entity.Phase, err error) *PhotoUploadError {
	return &PhotoUploadError{
		submissionError: submissionError{base: domainerrors.ErrPhotoUploadFailed, err: err},
		RecordID:        recordID,
		Phase:           phase,
	}
}

func (e *PhotoUploadError) Error() string {
	return fmt.Sprintf("upload %s photos of record %s: %v", e.Phase, e.RecordID, e.err)
}

func (e *PhotoUploadError) Details() string {
	return fmt.Sprintf("record %s, phase %s: %s", e.RecordID, e.Phase, e.submissionError.Details())
}

// deviceAppError maps a device failure to the matching application error.
func deviceAppError(status service.AcquireStatus, reason string) *domainerrors.BaseError {
	switch status {
	case service.AcquireDenied:
		return domainerrors.ErrDevicePermissionDenied.WithDetails(reason)
	case service.AcquireUnavailable:
		return domainerrors.ErrDeviceUnavailable.WithDetails(reason)
	default:
		return domainerrors.ErrDeviceFailed.WithDetails(reason)
	}
}

func invalidTransition(action string, state State) *domainerrors.BaseError {
	return domainerrors.ErrInvalidTransition.WithDetails(fmt.Sprintf("%s is not allowed in %s", action, state))
}

func validationError(details string) *domainerrors.BaseError {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}
