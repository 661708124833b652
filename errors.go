// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import "fmt"

// ErrorKind categorizes client failures so callers can branch on the class
// of failure without parsing error strings.
type ErrorKind int

const (
	// KindConfig indicates missing or invalid configuration (host, path,
	// verb, credentials, timeout). Raised before any network activity.
	KindConfig ErrorKind = iota

	// KindTransport indicates the controller could not be reached
	// (connection refused, DNS failure, timeout). The session remains
	// usable; no state is corrupted by a failed call.
	KindTransport

	// KindAuth indicates the controller was reached but a login or refresh
	// response did not contain the expected token field (bad credentials,
	// incompatible controller version, or malformed body).
	KindAuth

	// KindClassification indicates ResponseHandler was given a
	// non-conforming response or an unset verb/response. This signals a
	// caller contract violation, not a controller problem.
	KindClassification

	// KindController indicates the controller returned a response outside
	// the caller's accepted status codes.
	KindController
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindAuth:
		return "auth"
	case KindClassification:
		return "classification"
	case KindController:
		return "controller"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// ClientError represents a structured client failure with operation context
type ClientError struct {
	// Kind is the failure category
	Kind ErrorKind

	// Operation is the name of the operation that failed
	Operation string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nd: %s failed: %s: %s (%v)", e.Operation, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("nd: %s failed: %s: %s", e.Operation, e.Kind, e.Message)
}

// Unwrap returns the underlying error for errors.Is / errors.As chains
func (e *ClientError) Unwrap() error {
	return e.Err
}

// configError builds a KindConfig ClientError
func configError(operation, format string, args ...any) *ClientError {
	return &ClientError{
		Kind:      KindConfig,
		Operation: operation,
		Message:   fmt.Sprintf(format, args...),
	}
}

// transportError builds a KindTransport ClientError wrapping err
func transportError(operation string, err error) *ClientError {
	return &ClientError{
		Kind:      KindTransport,
		Operation: operation,
		Message:   "error connecting to the controller",
		Err:       err,
	}
}

// authError builds a KindAuth ClientError
func authError(operation, format string, args ...any) *ClientError {
	return &ClientError{
		Kind:      KindAuth,
		Operation: operation,
		Message:   fmt.Sprintf(format, args...),
	}
}

// classificationError builds a KindClassification ClientError
func classificationError(operation, format string, args ...any) *ClientError {
	return &ClientError{
		Kind:      KindClassification,
		Operation: operation,
		Message:   fmt.Sprintf(format, args...),
	}
}

// controllerError builds a KindController ClientError
func controllerError(operation, format string, args ...any) *ClientError {
	return &ClientError{
		Kind:      KindController,
		Operation: operation,
		Message:   fmt.Sprintf(format, args...),
	}
}

// IsKind reports whether err is (or wraps) a *ClientError of the given kind
//
// Example:
//
//	if nd.IsKind(err, nd.KindTransport) {
//	    // Controller unreachable; the session is still usable. Retry later.
//	}
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		if ce, ok := err.(*ClientError); ok {
			return ce.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
