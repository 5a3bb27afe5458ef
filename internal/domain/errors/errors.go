package errors

import (
	"net/http"
	"strings"

	"bloodlink/internal/errors"
)

// Kind classifies a failure the way callers are expected to react to it.
type Kind string

const (
	KindUnauthenticated    Kind = "UNAUTHENTICATED"
	KindInvalidArgument    Kind = "INVALID_ARGUMENT"
	KindFailedPrecondition Kind = "FAILED_PRECONDITION"
	KindPermissionDenied   Kind = "PERMISSION_DENIED"
	KindNotFound           Kind = "NOT_FOUND"
	KindInternal           Kind = "INTERNAL"
)

// HTTPCode maps the kind to the HTTP status returned to callers.
func (k Kind) HTTPCode() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindFailedPrecondition:
		return http.StatusPreconditionFailed
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DefaultInternalMessage is returned when an unexpected failure carries no message.
const DefaultInternalMessage = "Server error occurred."

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Machine readable error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind    Kind
	message string
	details string
	cause   error
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, message, details string) *BaseError {
	return &BaseError{
		kind:    kind,
		message: message,
		details: details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Unwrap exposes the collaborator failure behind an internal error.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the machine readable error code
func (e *BaseError) ErrorCode() string {
	return string(e.kind)
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
		kind:    e.kind,
		message: e.message,
		details: details,
		cause:   e.cause,
	}
}

// Is matches errors of the same kind and message, so copies made by WithDetails
// still match their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.message == t.message
}

func Unauthenticated(message string) *BaseError {
	return NewBaseError(KindUnauthenticated, message, "")
}

func InvalidArgument(message string) *BaseError {
	return NewBaseError(KindInvalidArgument, message, "")
}

func FailedPrecondition(message string) *BaseError {
	return NewBaseError(KindFailedPrecondition, message, "")
}

func PermissionDenied(message string) *BaseError {
	return NewBaseError(KindPermissionDenied, message, "")
}

func NotFound(message string) *BaseError {
	return NewBaseError(KindNotFound, message, "")
}

// Internal wraps an unexpected collaborator failure. The message is the
// failure's own message when it has one, otherwise fallback.
func Internal(cause error, fallback string) *BaseError {
	message := strings.TrimSpace(errors.Message(cause))
	if message == "" {
		message = fallback
	}
	if message == "" {
		message = DefaultInternalMessage
	}

	return &BaseError{
		kind:    KindInternal,
		message: message,
		cause:   cause,
	}
}

// ToAppError returns err unchanged when it already carries a kind, otherwise an Internal error.
func ToAppError(err error, fallback string) AppError {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return Internal(err, fallback)
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// Predefined error types
var (
	ErrUnauthenticated = Unauthenticated("You must be logged in.")

	// Profile-related errors
	ErrInvalidRole            = InvalidArgument("role must be donor or hospital")
	ErrEmailNotVerified       = FailedPrecondition("Email is not verified yet.")
	ErrPendingProfileNotFound = NotFound("No pending profile found.")
	ErrProfileNotFound        = NotFound("User profile not found.")
	ErrNotAllowed             = PermissionDenied("Not allowed.")
	ErrFCMTokenRequired       = InvalidArgument("FCM token is required.")
	ErrNoProfileFields        = InvalidArgument("No valid fields to update.")
	ErrInvalidBloodType       = InvalidArgument("bloodType must be one of A+, A-, B+, B-, AB+, AB-, O+, O-.")

	// Request-related errors
	ErrHospitalOnlyCreate  = PermissionDenied("Only hospitals can create blood requests")
	ErrHospitalOnlyDonors  = PermissionDenied("Only hospitals can view donor lists.")
	ErrHospitalOnlyOwned   = PermissionDenied("Only hospitals can view their requests.")
	ErrHospitalOnlyDelete  = PermissionDenied("Only hospitals can delete requests.")
	ErrNotRequestOwner     = PermissionDenied("You can only delete your own requests.")
	ErrNotRequestOwnerView = PermissionDenied("You can only view codes of your own requests.")
	ErrRequestNotFound     = NotFound("Request not found.")
	ErrInvalidUnits        = InvalidArgument("units must be a positive number")

	// Notification-related errors
	ErrNotificationNotFound = NotFound("Notification not found.")

	// General errors
	ErrInternalError = Internal(nil, DefaultInternalMessage)
)
