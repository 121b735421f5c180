package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/tradingiq/bybit-client/interfaces"
	"github.com/tradingiq/bybit-client/sign"
	"github.com/tradingiq/bybit-client/types"
)

const (
	MainnetBybit  = "stream.bybit.com"
	MainnetBytick = "stream.bytick.com"
	Testnet       = "stream-testnet.bybit.com"

	PingInterval = 15 * time.Second

	DefaultDialTimeout = 5 * time.Second

	// SubscriptionLookahead is how many frames may arrive before the ack of a
	// subscribe or unsubscribe request is considered missing.
	SubscriptionLookahead = 100

	DefaultReadLimit = 4 << 20
)

// Conn is the subset of *websocket.Conn used by the client.
type Conn interface {
	Read(ctx context.Context) (websocket.MessageType, []byte, error)
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
}

type DialFunc func(ctx context.Context, url string) (Conn, error)

func dial(ctx context.Context, url string) (Conn, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(DefaultReadLimit)
	return conn, nil
}

type frame struct {
	data []byte
	err  error
}

// Client is a single streaming connection. It is meant to be driven by one
// caller: Next, Subscribe and Unsubscribe must not run concurrently.
type Client struct {
	hostname  string
	apiKey    string
	apiSecret string

	conn       Conn
	frames     chan frame
	readCancel context.CancelFunc
	ticker     *time.Ticker

	channels []types.Channel
	buf      eventBuffer

	pingInterval time.Duration
	dialTimeout  time.Duration
	dial         DialFunc
	now          func() time.Time
	metrics      *Metrics
	logger       *zap.Logger
}

type ClientOption func(*Client)

// WithCredentials authenticates the connection, enabling private channels.
func WithCredentials(apiKey, apiSecret string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
		c.apiSecret = apiSecret
	}
}

func WithPingInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.pingInterval = d
		}
	}
}

func WithDialTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.dialTimeout = d
		}
	}
}

// WithDialer replaces the function used to open the socket.
func WithDialer(dial DialFunc) ClientOption {
	return func(c *Client) {
		if dial != nil {
			c.dial = dial
		}
	}
}

func WithMetrics(m *Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

func withClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(hostname string, logger *zap.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		hostname:     hostname,
		channels:     make([]types.Channel, 0),
		pingInterval: PingInterval,
		dialTimeout:  DefaultDialTimeout,
		dial:         dial,
		now:          time.Now,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.StreamClient = (*Client)(nil)

func (c *Client) IsConnected() bool {
	return c.conn != nil
}

func (c *Client) IsAuthenticated() bool {
	return c.apiKey != ""
}

// Channels returns a copy of the active subscription set in subscription
// order.
func (c *Client) Channels() []types.Channel {
	channels := make([]types.Channel, len(c.channels))
	copy(channels, c.channels)
	return channels
}

func (c *Client) url() string {
	u := url.URL{Scheme: "wss", Host: c.hostname, Path: "/realtime"}
	if c.IsAuthenticated() {
		expires := sign.Expires(c.now())
		q := url.Values{}
		q.Set("api_key", c.apiKey)
		q.Set("expires", strconv.FormatInt(expires, 10))
		q.Set("signature", sign.Handshake(expires, c.apiSecret))
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Connect opens the socket and starts the heartbeat. Calling Connect on a
// connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	defer cancel()

	conn, err := c.dial(timeoutCtx, c.url())
	if err != nil {
		c.metrics.incConnect("error")
		return fmt.Errorf("failed to connect to websocket: %w", err)
	}
	c.metrics.incConnect("success")

	readCtx, readCancel := context.WithCancel(context.Background())
	frames := make(chan frame)
	go c.readLoop(readCtx, conn, frames)

	c.conn = conn
	c.frames = frames
	c.readCancel = readCancel
	c.ticker = time.NewTicker(c.pingInterval)

	c.logger.Info("Connected to Bybit WebSocket",
		zap.String("host", c.hostname),
		zap.Bool("authenticated", c.IsAuthenticated()))
	return nil
}

// readLoop hands text frames to the caller one at a time. A frame is only
// read from the socket after the previous one was taken.
func (c *Client) readLoop(ctx context.Context, conn Conn, frames chan<- frame) {
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			select {
			case frames <- frame{err: err}:
			case <-ctx.Done():
			}
			return
		}

		if typ != websocket.MessageText {
			c.logger.Debug("Ignoring binary frame", zap.Int("size", len(data)))
			continue
		}

		select {
		case frames <- frame{data: data}:
		case <-ctx.Done():
			return
		}
	}
}

// Close tears the connection down. Buffered events and the subscription set
// are kept.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.teardown()
	c.logger.Info("Disconnected from Bybit WebSocket")
	return err
}

func (c *Client) teardown() error {
	err := c.conn.Close(websocket.StatusNormalClosure, "client disconnect")
	c.readCancel()
	c.ticker.Stop()

	c.conn = nil
	c.frames = nil
	c.readCancel = nil
	c.ticker = nil
	return err
}

func (c *Client) fail(op string, err error) error {
	c.logger.Error("WebSocket transport failed", zap.String("op", op), zap.Error(err))
	c.metrics.incError("transport")
	_ = c.teardown()
	return &TransportError{Op: op, Err: err}
}

// Send writes v as a JSON text frame.
func (c *Client) Send(ctx context.Context, v interface{}) error {
	if c.conn == nil {
		return ErrNotConnected
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
		return c.fail("send message", err)
	}
	return nil
}

// Ping sends a heartbeat frame.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.Send(ctx, types.NewPingRequest()); err != nil {
		return err
	}
	c.metrics.incPing()
	c.logger.Debug("Sent ping")
	return nil
}

// nextResponse waits for the next inbound frame and classifies it, sending a
// heartbeat every time the ticker fires in between.
func (c *Client) nextResponse(ctx context.Context) (*Response, error) {
	for {
		if c.conn == nil {
			return nil, ErrNotConnected
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-c.ticker.C:
			if err := c.Ping(ctx); err != nil {
				return nil, err
			}

		case f := <-c.frames:
			if f.err != nil {
				return nil, c.fail("read message", f.err)
			}

			resp, err := Classify(f.data)
			if err != nil {
				c.metrics.incError("decode")
				c.logger.Warn("Failed to classify frame", zap.Error(err), zap.ByteString("frame", f.data))
				return nil, err
			}
			c.metrics.incFrame(resp.Shape)
			return resp, nil
		}
	}
}

func (c *Client) handle(resp *Response) {
	if resp.Shape == ShapeAck {
		c.logger.Debug("Discarding acknowledgement",
			zap.String("op", resp.Ack.Request.Op),
			zap.Strings("args", resp.Ack.Request.Args),
			zap.Bool("success", resp.Ack.Success))
		return
	}
	c.buf.push(resp.Events...)
}

// Next returns the next event, reading from the socket when nothing is
// buffered. A *DecodeError leaves the connection intact; a *TransportError
// means it was closed.
func (c *Client) Next(ctx context.Context) (types.Event, error) {
	for {
		if e, ok := c.buf.pop(); ok {
			c.metrics.incEvent(string(e.EventKind()))
			return e, nil
		}

		resp, err := c.nextResponse(ctx)
		if err != nil {
			return nil, err
		}
		c.handle(resp)
	}
}
