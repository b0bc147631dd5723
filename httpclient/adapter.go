package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/gomonzo/logger"
	"github.com/kbukum/gomonzo/observability"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Adapter is the configured HTTP transport. It is safe for concurrent use
// and holds no per-request state.
type Adapter struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	metrics    *observability.Metrics
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger logs one debug line per request.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l.WithComponent("httpclient")
		}
	}
}

// WithMetrics records request counts and durations.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *Adapter) { a.metrics = m }
}

// WithHTTPClient replaces the underlying *http.Client. Config.Timeout and
// Config.TLS are not applied to a supplied client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		if c != nil {
			a.httpClient = c
		}
	}
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		transport.TLSClientConfig = tlsCfg
	}

	a := &Adapter{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    logger.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Do executes an HTTP request and returns the complete response.
// Non-2xx responses are returned without error; only failures that prevent
// a response from being read produce an *Error.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrRequestID, requestID)
	observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, req.Method)
	observability.SetSpanAttribute(ctx, observability.AttrHTTPPath, req.Path)

	fields := logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
	)

	resp, err := a.executeRequest(ctx, req)
	duration := time.Since(start)
	fields = logger.MergeWithDuration(fields, duration)

	if err != nil {
		observability.SetSpanError(ctx, err)
		observability.SetSpanAttribute(ctx, observability.AttrErrorKind, err.Code.String())
		if a.metrics != nil {
			a.metrics.RecordError(ctx, err.Code.String())
		}
		fields[logger.FieldError] = err.Error()
		a.log.Error("request failed", fields)
		return nil, err
	}

	observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, resp.StatusCode)
	if a.metrics != nil {
		a.metrics.RecordRequest(ctx, req.Method, req.Path, strconv.Itoa(resp.StatusCode), duration)
	}
	fields[logger.FieldStatus] = resp.StatusCode
	a.log.Debug("request completed", fields)

	return resp, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (a *Adapter) Unwrap() *http.Client {
	return a.httpClient
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return a.config.Name
}

// GetConfig returns the adapter's configuration.
func (a *Adapter) GetConfig() Config {
	return a.config
}

// Close releases idle connections held by the adapter.
func (a *Adapter) Close() error {
	a.httpClient.CloseIdleConnections()
	return nil
}

// executeRequest builds and sends the HTTP request.
func (a *Adapter) executeRequest(ctx context.Context, req Request) (*Response, *Error) {
	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, doErr := a.httpClient.Do(httpReq)
	if doErr != nil {
		return nil, classifyTransportError(ctx, doErr)
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, classifyTransportError(ctx, fmt.Errorf("read response body: %w", readErr))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, *Error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, a.resolveURL(req.Path), body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, vs := range req.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("Accept", contentTypeJSON)
	if a.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", a.config.UserAgent)
	}

	// Apply default headers
	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}

	// The encoded body decides its own content type
	if body != nil {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Apply request-specific headers (override defaults)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	// Apply auth: request-level overrides client-level
	auth := a.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(httpReq)

	return httpReq, nil
}

// resolveURL joins a relative path onto the base URL.
func (a *Adapter) resolveURL(path string) string {
	if a.config.BaseURL == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(a.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// encodeBody converts the request body into an io.Reader and content type.
func encodeBody(req Request) (io.Reader, string, error) {
	if req.Body != nil && req.Form != nil {
		return nil, "", fmt.Errorf("request has both a JSON and a form body")
	}
	if req.Form != nil {
		return strings.NewReader(req.Form.Encode()), contentTypeForm, nil
	}
	switch v := req.Body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(v), contentTypeJSON, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), contentTypeJSON, nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
