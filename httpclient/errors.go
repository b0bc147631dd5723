package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorCode classifies HTTP client errors and response statuses.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, TLS, etc).
	ErrCodeConnection
	// ErrCodeCanceled indicates the caller canceled the request.
	ErrCodeCanceled
	// ErrCodeAuth indicates an authentication/authorization failure (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates rate limiting (429).
	ErrCodeRateLimit
	// ErrCodeValidation indicates a client-side error (other 4xx, or a request
	// that could not be built).
	ErrCodeValidation
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeCanceled:
		return "canceled"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a transport-level failure: no usable response was received.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewCanceledError creates a cancellation error.
func NewCanceledError(err error) *Error {
	return &Error{Code: ErrCodeCanceled, Message: err.Error(), Err: err}
}

// NewValidationError creates an error for a request that could not be built.
func NewValidationError(msg string) *Error {
	return &Error{Code: ErrCodeValidation, Message: msg}
}

// classifyTransportError maps a failed round trip onto an *Error.
func classifyTransportError(ctx context.Context, err error) *Error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return NewCanceledError(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(err)
	}
	return NewConnectionError(err)
}

// ClassifyStatus maps an HTTP status code onto an ErrorCode.
// The boolean is false for 2xx statuses, which are not errors.
func ClassifyStatus(statusCode int) (ErrorCode, bool) {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return 0, false
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return ErrCodeAuth, true
	case statusCode == http.StatusNotFound:
		return ErrCodeNotFound, true
	case statusCode == http.StatusTooManyRequests:
		return ErrCodeRateLimit, true
	case statusCode >= 400 && statusCode < 500:
		return ErrCodeValidation, true
	default:
		return ErrCodeServer, true
	}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsCanceled checks if an error is a cancellation error.
func IsCanceled(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCanceled
}
