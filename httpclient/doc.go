// Package httpclient is the HTTP transport used by the Monzo client.
//
// It owns everything below the request/endpoint abstraction: joining paths
// onto the base URL, bearer authentication, JSON and form body encoding,
// query strings, TLS settings and timeouts. Every response, whatever its
// status, is returned to the caller; only failures that prevent a response
// from arriving are reported as *Error.
//
// The typed request executor lives in the rest subpackage.
//
// # Basic Usage
//
//	adapter, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.monzo.com",
//	    Auth:    httpclient.BearerAuth(accessToken),
//	}, httpclient.WithLogger(log))
//
//	resp, err := adapter.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/balance",
//	    Query:  url.Values{"account_id": {accountID}},
//	})
package httpclient
