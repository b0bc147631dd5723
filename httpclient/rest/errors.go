package rest

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kbukum/gomonzo/httpclient"
)

// TransportError reports that no response was received: connection
// refused, DNS, TLS, timeout, cancellation or a failed body read.
type TransportError struct {
	Err *httpclient.Error
}

func (e *TransportError) Error() string {
	return "rest: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a 2xx response whose body could not be decoded into
// the expected type, or that was missing a required field.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return "rest: decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is a non-2xx response. Code and Message come from the
// {"code": ..., "message": ...} error body; both are empty when the body
// does not have that shape.
type APIError struct {
	StatusCode int
	Kind       httpclient.ErrorCode
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("rest: api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	case e.Code != "":
		return fmt.Sprintf("rest: api error %d (%s)", e.StatusCode, e.Code)
	case e.Message != "":
		return fmt.Sprintf("rest: api error %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("rest: api error %d", e.StatusCode)
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newAPIError(resp *httpclient.Response, kind httpclient.ErrorCode) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Kind:       kind,
		Body:       resp.Body,
	}
	var body errorBody
	if err := json.Unmarshal(resp.Body, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	return apiErr
}

// IsTransport checks if the error is a *TransportError.
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// IsDecode checks if the error is a *DecodeError.
func IsDecode(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// IsAPI checks if the error is an *APIError.
func IsAPI(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsAuth checks if the error is a 401/403 response.
func IsAuth(err error) bool { return isKind(err, httpclient.ErrCodeAuth) }

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool { return isKind(err, httpclient.ErrCodeNotFound) }

// IsRateLimit checks if the error is a 429 response.
func IsRateLimit(err error) bool { return isKind(err, httpclient.ErrCodeRateLimit) }

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool { return isKind(err, httpclient.ErrCodeServer) }

// IsTimeout checks if the error is a transport timeout.
func IsTimeout(err error) bool { return httpclient.IsTimeout(err) }

func isKind(err error, kind httpclient.ErrorCode) bool {
	var e *APIError
	return errors.As(err, &e) && e.Kind == kind
}
