package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"arangodoc/internal/logging"
	"arangodoc/internal/protocol"
)

// HTTPTransport sends requests to one database of a server over HTTP.
type HTTPTransport struct {
	client   *http.Client
	baseURL  *url.URL
	database string
	auth     Authentication
	timeout  time.Duration
	logger   logging.Logger
	metrics  *Metrics
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient sets the client used to send requests. Its transport is wrapped for tracing.
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		t.client = client
	}
}

// WithAuthentication sets the credentials added to every request.
func WithAuthentication(auth Authentication) Option {
	return func(t *HTTPTransport) {
		t.auth = auth
	}
}

// WithTimeout bounds every request. Zero means no bound beyond the caller's context.
func WithTimeout(timeout time.Duration) Option {
	return func(t *HTTPTransport) {
		t.timeout = timeout
	}
}

// WithLogger sets the logger of the transport.
func WithLogger(logger logging.Logger) Option {
	return func(t *HTTPTransport) {
		t.logger = logger
	}
}

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) Option {
	return func(t *HTTPTransport) {
		t.metrics = m
	}
}

// NewHTTPTransport returns a transport for database on the server at endpoint.
func NewHTTPTransport(endpoint, database string, opts ...Option) (*HTTPTransport, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported endpoint scheme %q", base.Scheme)
	}
	if database == "" {
		return nil, fmt.Errorf("database name is required")
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	t := &HTTPTransport{
		client:   &http.Client{},
		baseURL:  base,
		database: database,
		logger:   logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	inner := t.client.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	client := *t.client
	client.Transport = otelhttp.NewTransport(inner)
	t.client = &client

	return t, nil
}

// Database returns the name of the database requests are sent to.
func (t *HTTPTransport) Database() string {
	return t.database
}

// URL returns the absolute URL of a request path.
func (t *HTTPTransport) URL(path string, query url.Values) *url.URL {
	u := *t.baseURL
	u.Path = t.baseURL.Path + protocol.PathDatabase + t.database + path
	u.RawQuery = query.Encode()
	return &u
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*protocol.Response, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, t.URL(req.Path, req.Query).String(), body)
	if err != nil {
		return nil, &protocol.TransportError{Op: "encode", Err: err}
	}
	for name, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	requestID := httpReq.Header.Get(protocol.HeaderRequestID)
	if requestID == "" {
		if id, ok := RequestIDFrom(ctx); ok {
			requestID = id
		} else {
			requestID = uuid.NewString()
		}
		httpReq.Header.Set(protocol.HeaderRequestID, requestID)
	}

	if t.auth != nil {
		if err := t.auth.Authenticate(httpReq); err != nil {
			return nil, &protocol.TransportError{Op: "authenticate", Err: err}
		}
	}

	start := time.Now()
	httpRes, err := t.client.Do(httpReq)
	if err != nil {
		t.metrics.observe(req.Operation, 0, time.Since(start))
		t.logger.Warnw("database request failed",
			"method", req.Method, "path", req.Path, "request_id", requestID, "error", err)
		return nil, &protocol.TransportError{Op: "send", Err: err}
	}
	defer httpRes.Body.Close()

	data, err := io.ReadAll(httpRes.Body)
	elapsed := time.Since(start)
	t.metrics.observe(req.Operation, httpRes.StatusCode, elapsed)
	if err != nil {
		t.logger.Warnw("reading database response failed",
			"method", req.Method, "path", req.Path, "request_id", requestID, "error", err)
		return nil, &protocol.TransportError{Op: "read", Err: err}
	}

	t.logger.Debugw("database request",
		"method", req.Method,
		"path", req.Path,
		"status", httpRes.StatusCode,
		"latency", elapsed,
		"request_id", requestID,
	)

	return &protocol.Response{
		StatusCode: httpRes.StatusCode,
		Header:     httpRes.Header,
		Body:       data,
	}, nil
}
