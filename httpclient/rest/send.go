package rest

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/kbukum/gomonzo/httpclient"
	"github.com/kbukum/gomonzo/validation"
)

// Empty is the success type of operations that return no data.
// Any 2xx response is a success, whatever its body.
type Empty struct{}

// ErrAmbiguousBody is returned for an endpoint that implements both
// JSONEndpoint and FormEndpoint.
var ErrAmbiguousBody = errors.New("rest: endpoint declares both a JSON and a form body")

// Send executes the endpoint and decodes a 2xx response into T.
//
// Struct results are validated after decoding, so pointer fields tagged
// `validate:"required"` turn a missing field into a *DecodeError. On any
// error the zero T is returned.
func Send[T any](ctx context.Context, c *Client, ep Endpoint) (T, error) {
	var zero T

	req, err := buildRequest(ep)
	if err != nil {
		return zero, err
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		var httpErr *httpclient.Error
		if errors.As(err, &httpErr) {
			return zero, &TransportError{Err: httpErr}
		}
		return zero, &TransportError{Err: &httpclient.Error{Code: httpclient.ErrCodeConnection, Message: err.Error(), Err: err}}
	}

	if kind, isErr := httpclient.ClassifyStatus(resp.StatusCode); isErr {
		return zero, newAPIError(resp, kind)
	}

	if _, ok := any(zero).(Empty); ok {
		return zero, nil
	}

	return decode[T](resp.Body)
}

// Transform sends the endpoint, decoding into the wire type W, and converts
// the result with conv. conv must be total: every valid W maps to a T.
func Transform[W, T any](ctx context.Context, c *Client, ep Endpoint, conv func(W) T) (T, error) {
	w, err := Send[W](ctx, c, ep)
	if err != nil {
		var zero T
		return zero, err
	}
	return conv(w), nil
}

// buildRequest maps an endpoint's capabilities onto an httpclient.Request.
func buildRequest(ep Endpoint) (httpclient.Request, error) {
	req := httpclient.Request{
		Method: ep.Method(),
		Path:   ep.Path(),
	}

	if q, ok := ep.(QueryEndpoint); ok {
		req.Query = q.Query()
	}

	j, isJSON := ep.(JSONEndpoint)
	f, isForm := ep.(FormEndpoint)
	switch {
	case isJSON && isForm:
		return httpclient.Request{}, ErrAmbiguousBody
	case isJSON:
		req.Body = j.JSONBody()
	case isForm:
		req.Form = f.FormBody()
	}

	return req, nil
}

// decode unmarshals body into T and validates struct results.
func decode[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, &DecodeError{Body: body, Err: err}
	}

	if target, ok := validationTarget(&out); ok {
		if err := validation.Validate(target); err != nil {
			var zero T
			return zero, &DecodeError{Body: body, Err: err}
		}
	}

	return out, nil
}

// validationTarget returns the struct pointer to validate for a decoded
// value. A struct T is validated through ptr; a *struct T through its value,
// so a JSON null fails validation.
func validationTarget[T any](ptr *T) (any, bool) {
	v := reflect.ValueOf(ptr).Elem()
	switch {
	case v.Kind() == reflect.Struct:
		return ptr, true
	case v.Kind() == reflect.Pointer && v.Type().Elem().Kind() == reflect.Struct:
		return v.Interface(), true
	default:
		return nil, false
	}
}
