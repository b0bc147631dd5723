// Package errors provides the structured error type for failures that are
// detected locally, before any request reaches the Monzo API: invalid
// configuration, missing command arguments and malformed input.
//
// Failures reported by the API itself, or by the transport, are modelled in
// httpclient/rest.
package errors
