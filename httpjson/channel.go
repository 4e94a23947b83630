package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/elnormous/contenttype"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/weaversa/cryptol-client-go/internal/jsonrpc"
	"github.com/weaversa/cryptol-client-go/internal/logctx"
)

// Remote evaluation can take a very long time; symbolic verification calls
// routinely run for minutes. Default to an hour rather than a typical
// HTTP-scale timeout.
const defaultRequestTimeout = 1 * time.Hour

var jsonMediaType = contenttype.NewMediaType("application/json")

// Channel performs one blocking JSON-RPC request at a time against a single
// HTTP endpoint.
type Channel struct {
	endpoint string
	hc       *http.Client
	log      *slog.Logger
	limiter  *rate.Limiter
}

// Option configures a Channel.
type Option func(*Channel)

// WithHTTPClient replaces the underlying *http.Client. The caller owns the
// client's timeout in that case.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Channel) { c.hc = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client. It has
// no effect when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Channel) {
		if d > 0 {
			c.hc.Timeout = d
		}
	}
}

// WithLogger sets the logger used for per-request logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Channel) { c.log = l }
}

// WithRateLimit applies a client-side token-bucket limit to outgoing
// requests. Useful when a shared cryptol-remote-api instance is being driven
// by batch tooling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Channel) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// New validates the endpoint URL and builds a channel around a keep-alive
// HTTP client.
func New(endpoint string, opts ...Option) (*Channel, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint url %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint url %q must use http or https", endpoint)
	}

	c := &Channel{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: defaultRequestTimeout},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the configured endpoint URL.
func (c *Channel) Endpoint() string {
	return c.endpoint
}

// Request sends one JSON-RPC request and returns the raw result payload. A
// server-reported failure is returned as a *jsonrpc.Error; everything else
// is a transport error.
func (c *Channel) Request(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	id := jsonrpc.NewRequestID(uuid.NewString())
	ctx = logctx.WithRPCMessage(ctx, &logctx.RPCMessage{Method: method, ID: id.String()})

	req, err := jsonrpc.NewRequest(id, method, params)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Connection", "keep-alive")

	start := time.Now()
	httpRes, err := c.hc.Do(httpReq)
	if err != nil {
		c.log.ErrorContext(ctx, "channel.request.transport_fail", slog.String("err", err.Error()))
		return nil, fmt.Errorf("request %q: %w", method, err)
	}
	defer func() { _ = httpRes.Body.Close() }()

	if httpRes.StatusCode < 200 || httpRes.StatusCode > 299 {
		c.log.ErrorContext(ctx, "channel.request.http_status", slog.Int("status", httpRes.StatusCode))
		return nil, fmt.Errorf("request %q: unexpected http status %d", method, httpRes.StatusCode)
	}

	ctype := contenttype.NewMediaType(httpRes.Header.Get("Content-Type"))
	if !ctype.Matches(jsonMediaType) {
		c.log.ErrorContext(ctx, "channel.request.content_type", slog.String("content_type", ctype.String()))
		return nil, fmt.Errorf("request %q: response content-type %q is not application/json", method, ctype.String())
	}

	resBody, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, fmt.Errorf("request %q: read response: %w", method, err)
	}

	var res jsonrpc.Response
	if err := json.Unmarshal(resBody, &res); err != nil {
		return nil, fmt.Errorf("request %q: decode response: %w", method, err)
	}
	if !res.ID.Equal(id) {
		return nil, fmt.Errorf("request %q: response id %q does not match request id %q", method, res.ID.String(), id.String())
	}

	if res.Error != nil {
		c.log.InfoContext(ctx, "channel.request.server_error",
			slog.Int("code", int(res.Error.Code)),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()))
		return nil, res.Error
	}

	c.log.InfoContext(ctx, "channel.request.ok", slog.Int64("dur_ms", time.Since(start).Milliseconds()))
	return res.Result, nil
}
