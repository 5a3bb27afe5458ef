// Package errors is the single error import of the module. Tree inspection comes from the
// standard library and annotation with stack traces from pkg/errors.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join keeps every failure of a best-effort loop. It returns nil when errs holds no error.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with message and the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf creates a new error carrying the caller's stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause strips pkg/errors annotations. Collaborators that classify failures by concrete
// type, such as gRPC status codes, look at the cause.
//
//nolint:wrapcheck
func Cause(err error) error {
	return pkgerrors.Cause(err)
}

// Message returns the outermost message of err, or an empty string for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

// Trace renders err with the stack recorded by the innermost annotation. It is meant for logs.
func Trace(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}
