// Package apperrors provides the error taxonomy shared by all SDK
// operations. Every failure carries a stable machine-readable Kind plus a
// human-readable message with the relevant context (email, id, status code)
// so hosts can display it without parsing.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the host platform.
type Kind int

const (
	// KindValidation covers missing or malformed caller input, detected
	// before any network call where feasible.
	KindValidation Kind = iota

	// KindAuthentication covers credential-exchange failures.
	KindAuthentication

	// KindNotFound covers record-resolution failures (bookings, users by id).
	KindNotFound

	// KindUserNotFound covers email-based user resolution with no exact match.
	KindUserNotFound

	// KindConflict covers duplicates detected on create.
	KindConflict

	// KindRemoteWrite covers non-success statuses from write endpoints. The
	// status code and raw body are surfaced verbatim and never retried.
	KindRemoteWrite
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindAuthentication:
		return "Authentication"
	case KindNotFound:
		return "NotFound"
	case KindUserNotFound:
		return "UserNotFound"
	case KindConflict:
		return "Conflict"
	case KindRemoteWrite:
		return "RemoteWrite"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the single error type produced by the SDK.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status code (0 when no response was involved)
	Body       string // Raw response body for debugging
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s (status %d)", e.Kind, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// Is lets callers match by kind using errors.Is with a bare &Error{Kind: k}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Authenticationf builds a KindAuthentication error.
func Authenticationf(format string, args ...any) *Error {
	return &Error{Kind: KindAuthentication, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// UserNotFound builds a KindUserNotFound error for an email lookup miss.
func UserNotFound(email string) *Error {
	return &Error{Kind: KindUserNotFound, Message: fmt.Sprintf("user with email %s not found", email)}
}

// Conflictf builds a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// RemoteWrite builds a KindRemoteWrite error from a write endpoint response.
// The message embeds the status code and the raw body so the host sees the
// upstream's own words.
func RemoteWrite(operation string, statusCode int, body string) *Error {
	return &Error{
		Kind:       KindRemoteWrite,
		StatusCode: statusCode,
		Body:       body,
		Message:    fmt.Sprintf("%s failed (status %d): %s", operation, statusCode, body),
	}
}
