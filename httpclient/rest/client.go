package rest

import (
	"github.com/kbukum/gomonzo/httpclient"
)

// Client is a JSON-focused REST client that wraps the HTTP adapter.
type Client struct {
	http *httpclient.Adapter
}

// New creates a new REST client from the given config.
// The Accept header defaults to application/json.
func New(cfg httpclient.Config, opts ...httpclient.Option) (*Client, error) {
	headers := make(map[string]string, len(cfg.Headers)+1)
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	if _, ok := headers["Accept"]; !ok {
		headers["Accept"] = "application/json"
	}
	cfg.Headers = headers

	a, err := httpclient.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: a}, nil
}

// NewFromAdapter creates a REST client from an existing HTTP adapter.
func NewFromAdapter(a *httpclient.Adapter) *Client {
	return &Client{http: a}
}

// HTTP returns the underlying HTTP adapter.
func (c *Client) HTTP() *httpclient.Adapter {
	return c.http
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}
