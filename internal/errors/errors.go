// Package errors is the single error import of the module. It forwards to the
// standard library and pkg/errors, and marks failures a caller may retry.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error with the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether err or one of the errors it wraps matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As assigns the first error in err's chain that fits target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap adds message and a stack trace to err. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err. A nil err stays nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats a new error carrying a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// temporaryError marks a failure that may succeed when attempted again.
type temporaryError struct {
	err error
}

func (e *temporaryError) Error() string { return "temporary: " + e.err.Error() }
func (e *temporaryError) Unwrap() error { return e.err }

// Temporary marks err as worth another attempt, such as a store outage or a
// backend 5xx. A nil err stays nil.
func Temporary(err error) error {
	if err == nil {
		return nil
	}

	return &temporaryError{err: err}
}

// IsTemporary reports whether err, or an error it wraps, was marked by Temporary.
func IsTemporary(err error) bool {
	var te *temporaryError

	return stderrors.As(err, &te)
}
