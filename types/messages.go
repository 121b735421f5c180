package types

const (
	OpSubscribe   = "subscribe"
	OpUnsubscribe = "unsubscribe"
	OpPing        = "ping"
)

// Request is an outbound control frame.
type Request struct {
	Op   string   `json:"op"`
	Args []string `json:"args,omitempty"`
}

func NewSubscribeRequest(topic string) Request {
	return Request{Op: OpSubscribe, Args: []string{topic}}
}

func NewUnsubscribeRequest(topic string) Request {
	return Request{Op: OpUnsubscribe, Args: []string{topic}}
}

func NewPingRequest() Request {
	return Request{Op: OpPing}
}

// RequestAck is the server reply to a Request.
type RequestAck struct {
	Success bool    `json:"success"`
	RetMsg  string  `json:"ret_msg"`
	ConnID  string  `json:"conn_id"`
	Request Request `json:"request"`
}

// Matches reports whether the ack answers op for topic. Only the first
// echoed argument is compared.
func (a *RequestAck) Matches(op, topic string) bool {
	if a.Request.Op != op || len(a.Request.Args) == 0 {
		return false
	}
	return a.Request.Args[0] == topic
}

type PositionAction string

const PositionActionUpdate PositionAction = "update"

type OrderbookSnapshotResponse struct {
	Topic       string          `json:"topic"`
	Data        []OrderbookItem `json:"data"`
	CrossSeq    int64           `json:"cross_seq"`
	TimestampE6 int64           `json:"timestamp_e6"`
}

type OrderbookDeltaResponse struct {
	Topic       string         `json:"topic"`
	Data        OrderbookDelta `json:"data"`
	CrossSeq    int64          `json:"cross_seq"`
	TimestampE6 int64          `json:"timestamp_e6"`
}

type TradeResponse struct {
	Topic string  `json:"topic"`
	Data  []Trade `json:"data"`
}

type InsuranceResponse struct {
	Topic string      `json:"topic"`
	Data  []Insurance `json:"data"`
}

type InstrumentInfoSnapshotResponse struct {
	Topic       string                 `json:"topic"`
	Data        InstrumentInfoSnapshot `json:"data"`
	CrossSeq    int64                  `json:"cross_seq"`
	TimestampE6 int64                  `json:"timestamp_e6"`
}

type InstrumentInfoDeltaResponse struct {
	Topic       string              `json:"topic"`
	Data        InstrumentInfoDelta `json:"data"`
	CrossSeq    int64               `json:"cross_seq"`
	TimestampE6 int64               `json:"timestamp_e6"`
}

type KlineResponse struct {
	Topic       string  `json:"topic"`
	Data        []Kline `json:"data"`
	TimestampE6 int64   `json:"timestamp_e6"`
}

type LiquidationResponse struct {
	Topic string      `json:"topic"`
	Data  Liquidation `json:"data"`
}

type PositionResponse struct {
	Topic  string         `json:"topic"`
	Action PositionAction `json:"action"`
	Data   []Position     `json:"data"`
}

type ExecutionResponse struct {
	Topic string      `json:"topic"`
	Data  []Execution `json:"data"`
}

type OrderResponse struct {
	Topic string        `json:"topic"`
	Data  []OrderUpdate `json:"data"`
}

type StopOrderResponse struct {
	Topic string            `json:"topic"`
	Data  []StopOrderUpdate `json:"data"`
}
