package httpclient

import "net/url"

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PATCH, ...).
	Method string
	// Path is appended to the adapter's BaseURL. A full URL is used as is.
	Path string
	// Headers are request-specific headers (merged with adapter defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query url.Values
	// Body is a JSON body. Accepts []byte (sent as is) or any value that
	// encoding/json can marshal.
	Body any
	// Form is an application/x-www-form-urlencoded body. Mutually exclusive with Body.
	Form url.Values
	// Auth overrides the adapter-level auth for this request.
	Auth *AuthConfig
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
