package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"

	"github.com/tradingiq/bybit-client/sign"
	"github.com/tradingiq/bybit-client/types"
)

type fakeFrame struct {
	typ  websocket.MessageType
	data []byte
	err  error
}

// fakeConn replays scripted frames. onWrite runs on the writing goroutine and
// may queue replies.
type fakeConn struct {
	mu      sync.Mutex
	written []types.Request
	onWrite func(conn *fakeConn, req types.Request)

	inbound   chan fakeFrame
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		inbound: make(chan fakeFrame, 512),
		closed:  make(chan struct{}),
	}
}

func (f *fakeConn) push(frames ...string) {
	for _, frame := range frames {
		f.inbound <- fakeFrame{typ: websocket.MessageText, data: []byte(frame)}
	}
}

func (f *fakeConn) Read(ctx context.Context) (websocket.MessageType, []byte, error) {
	select {
	case frame := <-f.inbound:
		return frame.typ, frame.data, frame.err
	case <-f.closed:
		return 0, nil, net.ErrClosed
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	}
}

func (f *fakeConn) Write(ctx context.Context, typ websocket.MessageType, p []byte) error {
	var req types.Request
	if err := json.Unmarshal(p, &req); err != nil {
		return err
	}

	f.mu.Lock()
	f.written = append(f.written, req)
	onWrite := f.onWrite
	f.mu.Unlock()

	if onWrite != nil {
		onWrite(f, req)
	}
	return nil
}

func (f *fakeConn) Close(code websocket.StatusCode, reason string) error {
	f.closeOnce.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeConn) requests() []types.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Request(nil), f.written...)
}

func ack(op, topic string, success bool) string {
	return fmt.Sprintf(`{"success":%t,"ret_msg":"","conn_id":"c","request":{"op":%q,"args":[%q]}}`, success, op, topic)
}

// confirmAll acknowledges every subscribe and unsubscribe request.
func confirmAll(conn *fakeConn, req types.Request) {
	if req.Op != types.OpPing {
		conn.push(ack(req.Op, req.Args[0], true))
	}
}

func connectedClient(t *testing.T, conn *fakeConn, opts ...ClientOption) *Client {
	t.Helper()

	opts = append([]ClientOption{WithDialer(func(ctx context.Context, url string) (Conn, error) {
		return conn, nil
	})}, opts...)
	client := NewClient(MainnetBybit, zaptest.NewLogger(t), opts...)

	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClient_ConnectURL(t *testing.T) {
	now := time.UnixMilli(1626034022751)
	expires := now.Add(2 * time.Second).UnixMilli()

	tests := []struct {
		name     string
		opts     []ClientOption
		expected string
	}{
		{
			name:     "public",
			expected: "wss://stream.bybit.com/realtime",
		},
		{
			name: "authenticated",
			opts: []ClientOption{WithCredentials("key", "secret")},
			expected: fmt.Sprintf("wss://stream.bybit.com/realtime?api_key=key&expires=%d&signature=%s",
				expires, sign.Handshake(expires, "secret")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dialed string
			opts := append([]ClientOption{
				withClock(func() time.Time { return now }),
				WithDialer(func(ctx context.Context, url string) (Conn, error) {
					dialed = url
					return newFakeConn(), nil
				}),
			}, tt.opts...)

			client := NewClient(MainnetBybit, zaptest.NewLogger(t), opts...)
			if err := client.Connect(context.Background()); err != nil {
				t.Fatalf("Connect returned error: %v", err)
			}
			defer client.Close()

			if dialed != tt.expected {
				t.Errorf("dialed %q, expected %q", dialed, tt.expected)
			}
			if !client.IsConnected() {
				t.Error("client should be connected")
			}
		})
	}
}

func TestClient_ConnectError(t *testing.T) {
	dialErr := errors.New("connection refused")
	client := NewClient(Testnet, nil, WithDialer(func(ctx context.Context, url string) (Conn, error) {
		return nil, dialErr
	}))

	err := client.Connect(context.Background())
	if !errors.Is(err, dialErr) {
		t.Fatalf("Connect error = %v, expected it to wrap the dial error", err)
	}
	if !strings.HasPrefix(err.Error(), "failed to connect to websocket") {
		t.Errorf("unexpected error message %q", err)
	}
	if client.IsConnected() {
		t.Error("client should not be connected")
	}
}

func TestClient_NotConnected(t *testing.T) {
	client := NewClient(Testnet, nil)
	ctx := context.Background()

	if err := client.Subscribe(ctx, types.TradeChannel()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Subscribe error = %v, expected ErrNotConnected", err)
	}
	if _, err := client.Next(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Next error = %v, expected ErrNotConnected", err)
	}
	if err := client.Ping(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Ping error = %v, expected ErrNotConnected", err)
	}
}

func TestClient_SubscribeNotAuthenticated(t *testing.T) {
	conn := newFakeConn()
	client := connectedClient(t, conn)

	err := client.Subscribe(testContext(t), types.TradeChannel(), types.OrderChannel())
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("Subscribe error = %v, expected ErrNotAuthenticated", err)
	}

	var channelErr *ChannelError
	if !errors.As(err, &channelErr) || channelErr.Channel != types.OrderChannel() {
		t.Errorf("error %v should name the private channel", err)
	}
	if n := len(conn.requests()); n != 0 {
		t.Errorf("sent %d frames, expected none", n)
	}
	if len(client.Channels()) != 0 {
		t.Errorf("Channels() = %v, expected none", client.Channels())
	}
}

func TestClient_SubscribePrivateWithCredentials(t *testing.T) {
	conn := newFakeConn()
	conn.onWrite = confirmAll
	client := connectedClient(t, conn, WithCredentials("key", "secret"))

	if err := client.Subscribe(testContext(t), types.PositionChannel()); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if !client.IsAuthenticated() {
		t.Error("client should be authenticated")
	}
}

func TestClient_Subscribe(t *testing.T) {
	conn := newFakeConn()
	conn.onWrite = confirmAll
	m := NewMetrics(prometheus.NewRegistry())
	client := connectedClient(t, conn, WithMetrics(m))

	channels := []types.Channel{types.TradeChannel(), types.OrderBook25Channel("BTCUSD"), types.TradeChannel()}
	if err := client.Subscribe(testContext(t), channels...); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	got := client.Channels()
	if len(got) != 3 || got[0] != channels[0] || got[1] != channels[1] || got[2] != channels[2] {
		t.Errorf("Channels() = %v, expected %v", got, channels)
	}

	requests := conn.requests()
	if len(requests) != 3 {
		t.Fatalf("sent %d frames, expected 3", len(requests))
	}
	for i, req := range requests {
		if req.Op != types.OpSubscribe || len(req.Args) != 1 || req.Args[0] != channels[i].Topic() {
			t.Errorf("request %d = %+v", i, req)
		}
	}

	if v := testutil.ToFloat64(m.subscriptions); v != 3 {
		t.Errorf("subscriptions gauge = %f, expected 3", v)
	}
	if v := testutil.ToFloat64(m.frames.WithLabelValues("ack")); v != 3 {
		t.Errorf("ack frames = %f, expected 3", v)
	}
}

func TestClient_SubscribeNegativeAckKeepsEarlierChannels(t *testing.T) {
	conn := newFakeConn()
	conn.onWrite = func(conn *fakeConn, req types.Request) {
		conn.push(ack(req.Op, req.Args[0], req.Args[0] == "trade"))
	}
	client := connectedClient(t, conn)

	err := client.Subscribe(testContext(t), types.TradeChannel(), types.InsuranceChannel(), types.LiquidationChannel())
	if !errors.Is(err, ErrSubscriptionFailed) {
		t.Fatalf("Subscribe error = %v, expected ErrSubscriptionFailed", err)
	}

	var channelErr *ChannelError
	if !errors.As(err, &channelErr) || channelErr.Channel != types.InsuranceChannel() || channelErr.Op != types.OpSubscribe {
		t.Errorf("error %v should name the rejected channel", err)
	}

	if got := client.Channels(); len(got) != 1 || got[0] != types.TradeChannel() {
		t.Errorf("Channels() = %v, expected [trade]", got)
	}
	if n := len(conn.requests()); n != 2 {
		t.Errorf("sent %d frames, expected 2", n)
	}
}

func TestClient_SubscribeBuffersDataFrames(t *testing.T) {
	conn := newFakeConn()
	conn.onWrite = func(conn *fakeConn, req types.Request) {
		conn.push(ack(types.OpSubscribe, "insurance", true), tradeFrame, pongFrame, ackSubscribeTrade)
	}
	client := connectedClient(t, conn)
	ctx := testContext(t)

	if err := client.Subscribe(ctx, types.TradeChannel()); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if n := client.buf.len(); n != 2 {
		t.Fatalf("buffered %d events, expected 2", n)
	}

	for i := 0; i < 2; i++ {
		e, err := client.Next(ctx)
		if err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
		if _, ok := e.(types.Trade); !ok {
			t.Errorf("event %d = %T, expected types.Trade", i, e)
		}
	}
}

func TestClient_SubscribeMissingConfirmation(t *testing.T) {
	conn := newFakeConn()
	conn.onWrite = func(conn *fakeConn, req types.Request) {
		for i := 0; i < SubscriptionLookahead; i++ {
			conn.push(pongFrame)
		}
		conn.push(ack(req.Op, req.Args[0], true))
	}
	client := connectedClient(t, conn)

	err := client.Subscribe(testContext(t), types.TradeChannel())
	if !errors.Is(err, ErrMissingConfirmation) {
		t.Fatalf("Subscribe error = %v, expected ErrMissingConfirmation", err)
	}
	if len(client.Channels()) != 0 {
		t.Errorf("Channels() = %v, expected none", client.Channels())
	}
	if !client.IsConnected() {
		t.Error("a missing confirmation should not close the connection")
	}
}

func TestClient_Unsubscribe(t *testing.T) {
	conn := newFakeConn()
	conn.onWrite = confirmAll
	client := connectedClient(t, conn)
	ctx := testContext(t)

	if err := client.Subscribe(ctx, types.TradeChannel(), types.InsuranceChannel(), types.TradeChannel()); err != nil {
		t.Fatal(err)
	}

	if err := client.Unsubscribe(ctx, types.TradeChannel()); err != nil {
		t.Fatalf("Unsubscribe returned error: %v", err)
	}
	if got := client.Channels(); len(got) != 1 || got[0] != types.InsuranceChannel() {
		t.Errorf("Channels() = %v, expected [insurance]", got)
	}

	if err := client.UnsubscribeAll(ctx); err != nil {
		t.Fatalf("UnsubscribeAll returned error: %v", err)
	}
	if len(client.Channels()) != 0 {
		t.Errorf("Channels() = %v, expected none", client.Channels())
	}

	last := conn.requests()[len(conn.requests())-1]
	if last.Op != types.OpUnsubscribe || last.Args[0] != "insurance" {
		t.Errorf("last request = %+v", last)
	}
}

func TestClient_UnsubscribeNotSubscribed(t *testing.T) {
	conn := newFakeConn()
	client := connectedClient(t, conn)

	err := client.Unsubscribe(testContext(t), types.KlineV2Channel("BTCUSD", "1"))
	if !errors.Is(err, ErrNotSubscribed) {
		t.Fatalf("Unsubscribe error = %v, expected ErrNotSubscribed", err)
	}
	if n := len(conn.requests()); n != 0 {
		t.Errorf("sent %d frames, expected none", n)
	}
}

func TestClient_NextSnapshotYieldsEachItem(t *testing.T) {
	conn := newFakeConn()
	client := connectedClient(t, conn)
	ctx := testContext(t)

	conn.push(orderbookSnapshotFrame, orderbookDeltaFrame)

	expectedIDs := []int64{29990000, 30000000, 30005000}
	for i, id := range expectedIDs {
		e, err := client.Next(ctx)
		if err != nil {
			t.Fatalf("Next %d returned error: %v", i, err)
		}
		item, ok := e.(types.OrderbookItem)
		if !ok || item.ID != id {
			t.Errorf("event %d = %+v, expected item %d", i, e, id)
		}
	}

	e, err := client.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(types.OrderbookDelta); !ok {
		t.Errorf("event = %T, expected types.OrderbookDelta", e)
	}
	if client.buf.len() != 0 {
		t.Errorf("a delta should yield exactly one event, %d left buffered", client.buf.len())
	}
}

func TestClient_NextDiscardsAcks(t *testing.T) {
	conn := newFakeConn()
	client := connectedClient(t, conn)

	conn.push(pongFrame, ackSubscribeTrade, insuranceFrame)

	e, err := client.Next(testContext(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(types.Insurance); !ok {
		t.Errorf("event = %T, expected types.Insurance", e)
	}
}

func TestClient_Heartbeat(t *testing.T) {
	conn := newFakeConn()
	conn.onWrite = func(conn *fakeConn, req types.Request) {
		if req.Op == types.OpPing {
			conn.push(pongFrame, klineFrame)
		}
	}
	m := NewMetrics(prometheus.NewRegistry())
	client := connectedClient(t, conn, WithPingInterval(50*time.Millisecond), WithMetrics(m))

	e, err := client.Next(testContext(t))
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if _, ok := e.(types.Kline); !ok {
		t.Errorf("event = %T, expected types.Kline", e)
	}

	requests := conn.requests()
	if len(requests) != 1 || requests[0].Op != types.OpPing || requests[0].Args != nil {
		t.Errorf("requests = %+v, expected a single ping", requests)
	}
	if v := testutil.ToFloat64(m.pings); v != 1 {
		t.Errorf("pings = %f, expected 1", v)
	}
}

func TestClient_NextIgnoresBinaryFrames(t *testing.T) {
	conn := newFakeConn()
	client := connectedClient(t, conn)

	conn.inbound <- fakeFrame{typ: websocket.MessageBinary, data: []byte{0x1, 0x2}}
	conn.push(liquidationFrame)

	e, err := client.Next(testContext(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(types.Liquidation); !ok {
		t.Errorf("event = %T, expected types.Liquidation", e)
	}
}

func TestClient_NextDecodeErrorKeepsConnection(t *testing.T) {
	conn := newFakeConn()
	client := connectedClient(t, conn)
	ctx := testContext(t)

	conn.push(`{"topic":"unknown","payload":1}`, executionFrame)

	_, err := client.Next(ctx)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || !errors.Is(err, ErrUnrecognizedFrame) {
		t.Fatalf("Next error = %v, expected an unrecognized frame", err)
	}
	if !client.IsConnected() {
		t.Fatal("a decode error should not close the connection")
	}

	e, err := client.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(types.Execution); !ok {
		t.Errorf("event = %T, expected types.Execution", e)
	}
}

func TestClient_NextTransportError(t *testing.T) {
	conn := newFakeConn()
	client := connectedClient(t, conn)
	ctx := testContext(t)

	conn.inbound <- fakeFrame{err: io.ErrUnexpectedEOF}

	_, err := client.Next(ctx)
	var transportErr *TransportError
	if !errors.As(err, &transportErr) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Next error = %v, expected a transport error", err)
	}
	if client.IsConnected() {
		t.Error("a transport error should close the connection")
	}
	if _, err := client.Next(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Next after failure = %v, expected ErrNotConnected", err)
	}
}

func TestClient_NextContextCanceled(t *testing.T) {
	conn := newFakeConn()
	client := connectedClient(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := client.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Next error = %v, expected context.DeadlineExceeded", err)
	}
	if !client.IsConnected() {
		t.Fatal("a canceled pull should not close the connection")
	}

	conn.push(stopOrderFrame)
	e, err := client.Next(testContext(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(types.StopOrderUpdate); !ok {
		t.Errorf("event = %T, expected types.StopOrderUpdate", e)
	}
}

func TestClient_Close(t *testing.T) {
	conn := newFakeConn()
	conn.onWrite = confirmAll
	client := connectedClient(t, conn)

	if err := client.Subscribe(testContext(t), types.TradeChannel()); err != nil {
		t.Fatal(err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	select {
	case <-conn.closed:
	default:
		t.Error("Close should close the socket")
	}
	if client.IsConnected() {
		t.Error("client should not be connected after Close")
	}
	if len(client.Channels()) != 1 {
		t.Error("Close should keep the subscription set")
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close returned error: %v", err)
	}
}
