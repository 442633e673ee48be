// Package backend is the typed REST client for the platform API the console
// administers. Each resource gets a thin service whose methods map 1:1 onto
// an HTTP verb and path; no business logic lives here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"backoffice/internal/platform/metrics"
	"backoffice/pkg/platform/circuit"
	"backoffice/pkg/platform/sentinel"
	"backoffice/pkg/requestcontext"
)

const maxErrorBody = 64 << 10

// Client is the shared HTTP base for all resource services.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	token   string
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	breaker *circuit.Breaker
}

type Option func(*Client)

// WithHTTPClient replaces the default otelhttp-instrumented client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithBreaker fails calls fast while b is open. Only transport failures and
// 5xx answers count against it.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// New builds a Client rooted at baseURL. Relative request paths are resolved
// against it, so baseURL should end with a slash.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend base URL %q must be absolute", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	c := &Client{
		baseURL: u,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   15 * time.Second,
		},
		logger: slog.Default(),
		tracer: otel.Tracer("backoffice/backend"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, resource, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, resource, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, resource, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, resource, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, resource, path string, out any) error {
	return c.do(ctx, http.MethodDelete, resource, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, resource, path string, query url.Values, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "backend."+resource,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("backend.path", path),
		))
	start := time.Now()
	attempted := false
	defer func() {
		outcome := "ok"
		switch {
		case errors.Is(err, ErrCircuitOpen):
			outcome = "rejected"
		case err != nil:
			outcome = "error"
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if attempted {
			c.recordOutcome(ctx, err)
		}
		c.metrics.ObserveBackendRequest(resource, method, outcome, start)
		span.End()
	}()

	if c.breaker != nil && !c.breaker.Allow() {
		return &TransportError{Method: method, Path: path, Err: ErrCircuitOpen}
	}
	attempted = true

	target := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")})
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if reqID := requestcontext.RequestID(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp),
			Method:  method,
			Path:    path,
		}
		c.logger.DebugContext(ctx, "backend returned error status",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"request_id", requestcontext.RequestID(ctx),
		)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) recordOutcome(ctx context.Context, err error) {
	if c.breaker == nil {
		return
	}
	if errors.Is(err, sentinel.ErrUnavailable) {
		// the caller giving up says nothing about the backend
		if ctx.Err() != nil {
			return
		}
		if _, change := c.breaker.RecordFailure(); change.Opened {
			c.logger.WarnContext(ctx, "backend circuit opened", "breaker", c.breaker.Name(), "error", err)
		}
		return
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "backend circuit closed", "breaker", c.breaker.Name())
	}
}

// readErrorMessage extracts { message } or { error } from an error body,
// falling back to the status text.
func readErrorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" && len(text) < 200 {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func seg(id string) string {
	return url.PathEscape(id)
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	return q
}

const dateLayout = "2006-01-02"

func setDate(q url.Values, key string, t *time.Time) {
	if t != nil {
		q.Set(key, t.Format(dateLayout))
	}
}
