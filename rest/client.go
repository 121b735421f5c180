// Package rest is a client for the Bybit inverse perpetual REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/go-querystring/query"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tradingiq/bybit-client/sign"
)

const (
	MainnetBybit  = "https://api.bybit.com"
	MainnetBytick = "https://api.bytick.com"
	Testnet       = "https://api-testnet.bybit.com"

	DefaultTimeout = 10 * time.Second

	maxResponseSize = 8 << 20
)

var tracer = otel.Tracer("bybit-client/rest")

type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string

	httpClient *http.Client
	limiter    *rate.Limiter
	now        func() time.Time
	logger     *zap.Logger
}

type ClientOption func(*Client)

func WithCredentials(apiKey, apiSecret string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
		c.apiSecret = apiSecret
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRateLimit bounds outgoing requests to rps per second with the given
// burst. Requests wait for a token rather than fail.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the time source used for request timestamps.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) IsAuthenticated() bool {
	return c.apiKey != ""
}

type envelope struct {
	RetCode          int64           `json:"ret_code"`
	RetMsg           string          `json:"ret_msg"`
	ExtCode          string          `json:"ext_code"`
	ExtInfo          string          `json:"ext_info"`
	Result           json.RawMessage `json:"result"`
	TimeNow          string          `json:"time_now"`
	RateLimitStatus  *int64          `json:"rate_limit_status,omitempty"`
	RateLimitResetMs *int64          `json:"rate_limit_reset_ms,omitempty"`
	RateLimit        *int64          `json:"rate_limit,omitempty"`
}

func (e *envelope) hasResult() bool {
	return len(e.Result) > 0 && !bytes.Equal(bytes.TrimSpace(e.Result), []byte("null"))
}

func (c *Client) get(ctx context.Context, path string, params interface{}, signed bool, result interface{}) (*envelope, error) {
	return c.do(ctx, http.MethodGet, path, params, signed, result)
}

func (c *Client) post(ctx context.Context, path string, params interface{}, result interface{}) (*envelope, error) {
	return c.do(ctx, http.MethodPost, path, params, true, result)
}

func (c *Client) do(ctx context.Context, method, path string, params interface{}, signed bool, result interface{}) (*envelope, error) {
	ctx, span := tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("bybit.path", path),
			attribute.Bool("bybit.signed", signed),
		))
	defer span.End()

	env, err := c.send(ctx, method, path, params, signed, result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return env, nil
}

func (c *Client) send(ctx context.Context, method, path string, params interface{}, signed bool, result interface{}) (*envelope, error) {
	if signed && !c.IsAuthenticated() {
		return nil, ErrMissingCredentials
	}

	values, err := c.values(params, signed)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	var body io.Reader
	if method == http.MethodGet {
		if len(values) > 0 {
			endpoint += "?" + values.Encode()
		}
	} else {
		payload, err := jsonBody(params, values)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("Request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", c.now().Sub(start)))

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if env.RetCode != 0 {
		c.logger.Warn("API returned an error",
			zap.String("path", path),
			zap.Int64("ret_code", env.RetCode),
			zap.String("ret_msg", env.RetMsg))
		return nil, &APIError{Code: env.RetCode, Message: env.RetMsg, ExtCode: env.ExtCode, ExtInfo: env.ExtInfo}
	}

	if result != nil && env.hasResult() {
		if err := json.Unmarshal(env.Result, result); err != nil {
			return nil, fmt.Errorf("failed to decode result: %w", err)
		}
	}
	return &env, nil
}

// values encodes params and, for signed requests, appends api_key,
// timestamp and sign.
func (c *Client) values(params interface{}, signed bool) (url.Values, error) {
	values := url.Values{}
	if params != nil {
		v, err := query.Values(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameters: %w", err)
		}
		values = v
	}

	if signed {
		values.Set("api_key", c.apiKey)
		values.Set("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
		values.Set("sign", sign.Params(values, c.apiSecret))
	}
	return values, nil
}

// jsonBody merges params with the signing fields of values into a JSON
// object.
func jsonBody(params interface{}, values url.Values) ([]byte, error) {
	fields := map[string]interface{}{}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal parameters: %w", err)
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("failed to marshal parameters: %w", err)
		}
	}

	fields["api_key"] = values.Get("api_key")
	fields["sign"] = values.Get("sign")
	timestamp, err := strconv.ParseInt(values.Get("timestamp"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}
	fields["timestamp"] = timestamp

	return json.Marshal(fields)
}
