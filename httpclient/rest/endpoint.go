package rest

import "net/url"

// Endpoint is the minimum every API operation provides.
type Endpoint interface {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method() string
	// Path is joined onto the client's base URL. A full http(s) URL is used as is.
	Path() string
}

// QueryEndpoint adds query parameters to the request URL.
type QueryEndpoint interface {
	Endpoint
	Query() url.Values
}

// JSONEndpoint sends a JSON body. The value is marshalled with encoding/json.
type JSONEndpoint interface {
	Endpoint
	JSONBody() any
}

// FormEndpoint sends an application/x-www-form-urlencoded body.
type FormEndpoint interface {
	Endpoint
	FormBody() url.Values
}
