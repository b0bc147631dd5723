// Package rest is the typed request executor built on httpclient.
//
// An API operation is any value implementing Endpoint. Optional capability
// interfaces add a query string (QueryEndpoint), a JSON body (JSONEndpoint)
// or a form body (FormEndpoint). Send executes an endpoint and decodes the
// 2xx response into T:
//
//	bal, err := rest.Send[wireBalance](ctx, client, balanceEndpoint{accountID})
//
// Failures are reported as one of three types:
//   - *TransportError when no response was received
//   - *APIError when the server answered with a non-2xx status
//   - *DecodeError when a 2xx body could not be decoded into T
//
// Use Empty as T for operations whose success carries no data.
package rest
