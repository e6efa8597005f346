// Package apperr defines the typed error taxonomy shared by the extraction
// pipeline, the LLM clients and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a failure class.
type Code string

const (
	// CodeInvalidArgument indicates missing or malformed caller input.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeModelUnavailable indicates a transport or backend failure while
	// calling the text-generation model.
	CodeModelUnavailable Code = "MODEL_UNAVAILABLE"
	// CodeUnparsableOutput indicates the model response contained no valid JSON.
	CodeUnparsableOutput Code = "UNPARSABLE_MODEL_OUTPUT"
	// CodeCollaborator indicates the calendar service rejected the request.
	CodeCollaborator Code = "COLLABORATOR_ERROR"
	// CodeUnauthenticated indicates no OAuth token is available yet.
	CodeUnauthenticated Code = "UNAUTHENTICATED"
)

// Error is a structured error carrying a failure code and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error

	// status overrides the code-derived HTTP status. Used for collaborator
	// failures whose status is propagated from the remote service.
	status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error to an HTTP status code.
func (e *Error) HTTPStatus() int {
	if e.status != 0 {
		return e.status
	}
	switch e.Code {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeModelUnavailable:
		return http.StatusBadGateway
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: msg}
}

// InvalidArgumentf creates an invalid argument error with formatting.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// ModelUnavailable creates a model unavailable error.
func ModelUnavailable(msg string, cause error) *Error {
	return &Error{Code: CodeModelUnavailable, Message: msg, Cause: cause}
}

// UnparsableOutput creates an unparsable model output error.
func UnparsableOutput(msg string, cause error) *Error {
	return &Error{Code: CodeUnparsableOutput, Message: msg, Cause: cause}
}

// Unauthenticated creates an unauthenticated error.
func Unauthenticated(msg string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: msg}
}

// Collaborator creates a collaborator error with a propagated HTTP status.
// A zero status defaults to 500.
func Collaborator(status int, msg string, cause error) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{Code: CodeCollaborator, Message: msg, Cause: cause, status: status}
}

// FromError extracts an *Error from err's chain, or nil if there is none.
func FromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
