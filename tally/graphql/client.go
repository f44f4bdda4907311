package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/viant/tally-mcp/tally/errs"
)

const (
	// DefaultEndpoint is the public Tally GraphQL API.
	DefaultEndpoint = "https://api.tally.xyz/query"
	// APIKeyHeader carries the static key on every request.
	APIKeyHeader   = "Api-Key"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 512
)

// Requester executes one GraphQL document and decodes its data member into out.
// Implementations must be safe for concurrent use.
type Requester interface {
	Request(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error
}

// Client is a stateless Requester over HTTP. It is configured once at
// construction and never mutated.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// WithMetrics enables request metrics.
func WithMetrics(m *Metrics) Option {
	return func(cl *Client) { cl.metrics = m }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.httpClient = &http.Client{Timeout: d, Transport: cl.httpClient.Transport}
		}
	}
}

// New creates a client for endpoint (DefaultEndpoint when empty).
func New(endpoint, apiKey string, opts ...Option) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string { return c.endpoint }

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors Errors          `json:"errors"`
}

// Request implements Requester.
func (c *Client) Request(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	operation := OperationName(query)
	started := time.Now()
	status, err := c.do(ctx, query, variables, out)
	elapsed := time.Since(started)
	c.metrics.observe(operation, status, err, elapsed)
	if err != nil {
		c.logger.DebugContext(ctx, "graphql request failed", "operation", operation, "status", status, "elapsed", elapsed, "error", err)
		return err
	}
	c.logger.DebugContext(ctx, "graphql request", "operation", operation, "status", status, "elapsed", elapsed)
	return nil
}

func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) (int, error) {
	body, err := json.Marshal(&request{Query: query, Variables: variables})
	if err != nil {
		return 0, errs.Upstreamf(err, "encode GraphQL request")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errs.Upstreamf(err, "create GraphQL request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(APIKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, errs.Upstreamf(err, "GraphQL request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errs.Upstreamf(err, "read GraphQL response")
	}

	var decoded response
	decodeErr := json.Unmarshal(payload, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := strings.TrimSpace(string(payload))
		if decodeErr == nil && len(decoded.Errors) > 0 {
			detail = decoded.Errors.Error()
		}
		detail = truncateDetail(detail, maxErrorBody)
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return resp.StatusCode, errs.WrapUpstream(&StatusError{StatusCode: resp.StatusCode, Detail: detail, Errors: decoded.Errors})
	}
	if decodeErr != nil {
		return resp.StatusCode, errs.Upstreamf(decodeErr, "decode GraphQL response")
	}
	if len(decoded.Errors) > 0 {
		return resp.StatusCode, errs.Upstreamf(decoded.Errors, "GraphQL Error (Code: %d)", resp.StatusCode)
	}
	if out == nil || len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return resp.StatusCode, errs.Upstreamf(err, "decode GraphQL data")
	}
	return resp.StatusCode, nil
}

// truncateDetail cuts text to at most limit bytes without splitting a rune.
func truncateDetail(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

var operationExpr = regexp.MustCompile(`(?:query|mutation)\s+([A-Za-z_][A-Za-z0-9_]*)`)

// OperationName extracts the named operation of a document, "anonymous" otherwise.
func OperationName(query string) string {
	if m := operationExpr.FindStringSubmatch(query); len(m) == 2 {
		return m[1]
	}
	return "anonymous"
}

// StatusError records a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Detail     string
	Errors     Errors
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GraphQL Error (Code: %d): %s", e.StatusCode, e.Detail)
}
