package monzo

import (
	"net/http"
	"time"

	apperrors "github.com/kbukum/gomonzo/errors"
	"github.com/kbukum/gomonzo/httpclient"
	"github.com/kbukum/gomonzo/httpclient/rest"
	"github.com/kbukum/gomonzo/logger"
	"github.com/kbukum/gomonzo/observability"
	"github.com/kbukum/gomonzo/version"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.monzo.com"

// Client is an authenticated Monzo API client. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	rest *rest.Client
}

type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	tls        *httpclient.TLSConfig
	log        *logger.Logger
	metrics    *observability.Metrics
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*clientOptions)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout bounds every request. Defaults to 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithTLS sets transport TLS options.
func WithTLS(cfg *httpclient.TLSConfig) Option {
	return func(o *clientOptions) { o.tls = cfg }
}

// WithLogger enables per-request debug logging in the transport.
func WithLogger(l *logger.Logger) Option {
	return func(o *clientOptions) { o.log = l }
}

// WithMetrics records request metrics in the transport.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *clientOptions) { o.metrics = m }
}

// WithHTTPClient sends requests through c. Timeout and TLS options are
// ignored for a supplied client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// New creates a client authenticated with a bearer access token.
func New(accessToken string, opts ...Option) (*Client, error) {
	if accessToken == "" {
		return nil, apperrors.MissingField("access_token")
	}

	o := clientOptions{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := httpclient.Config{
		Name:      "monzo",
		BaseURL:   o.baseURL,
		Timeout:   o.timeout,
		Auth:      httpclient.BearerAuth(accessToken),
		TLS:       o.tls,
		UserAgent: version.UserAgent(),
	}

	var httpOpts []httpclient.Option
	if o.log != nil {
		httpOpts = append(httpOpts, httpclient.WithLogger(o.log))
	}
	if o.metrics != nil {
		httpOpts = append(httpOpts, httpclient.WithMetrics(o.metrics))
	}
	if o.httpClient != nil {
		httpOpts = append(httpOpts, httpclient.WithHTTPClient(o.httpClient))
	}

	rc, err := rest.New(cfg, httpOpts...)
	if err != nil {
		return nil, apperrors.InvalidConfig(err)
	}
	return &Client{rest: rc}, nil
}

// NewFromConfig validates cfg and creates a client from it. Options are
// applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithTimeout(cfg.Timeout),
		WithTLS(cfg.TLS),
	}
	return New(cfg.AccessToken, append(base, opts...)...)
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.rest.Close()
}
