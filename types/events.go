package types

// EventKind names the payload carried by an Event.
type EventKind string

const (
	EventOrderbookSnapshot      EventKind = "orderbook_snapshot"
	EventOrderbookDelta         EventKind = "orderbook_delta"
	EventTrade                  EventKind = "trade"
	EventInsurance              EventKind = "insurance"
	EventInstrumentInfoSnapshot EventKind = "instrument_info_snapshot"
	EventInstrumentInfoDelta    EventKind = "instrument_info_delta"
	EventKline                  EventKind = "kline"
	EventLiquidation            EventKind = "liquidation"
	EventPosition               EventKind = "position"
	EventExecution              EventKind = "execution"
	EventOrder                  EventKind = "order"
	EventStopOrder              EventKind = "stop_order"
)

// Event is one item pulled from the stream. The concrete type is one of the
// payload types in this file.
type Event interface {
	EventKind() EventKind
}

// OrderbookItem is a single price level of an order book snapshot or delta.
type OrderbookItem struct {
	ID     int64  `json:"id"`
	Price  Float  `json:"price"`
	Symbol string `json:"symbol"`
	Side   Side   `json:"side"`
	Size   *int64 `json:"size,omitempty"`
}

type OrderbookDelta struct {
	Delete         []OrderbookItem `json:"delete"`
	Update         []OrderbookItem `json:"update"`
	Insert         []OrderbookItem `json:"insert"`
	TransactTimeE6 int64           `json:"transactTimeE6"`
}

type Trade struct {
	Side          Side          `json:"side"`
	Size          int64         `json:"size"`
	Symbol        string        `json:"symbol"`
	Price         Float         `json:"price"`
	TickDirection TickDirection `json:"tick_direction"`
	TradeID       string        `json:"trade_id"`
	Timestamp     string        `json:"timestamp"`
	TradeTimeMs   int64         `json:"trade_time_ms"`
	CrossSeq      int64         `json:"cross_seq"`
}

type Insurance struct {
	Currency      string `json:"currency"`
	Timestamp     string `json:"timestamp"`
	WalletBalance Float  `json:"wallet_balance"`
}

// InstrumentInfoSnapshot carries the full instrument state. Fields suffixed
// E4/E6/E8 are scaled by 10^4, 10^6 and 10^8.
type InstrumentInfoSnapshot struct {
	ID                     int64         `json:"id"`
	Symbol                 string        `json:"symbol"`
	LastPriceE4            int64         `json:"last_price_e4"`
	Bid1PriceE4            int64         `json:"bid1_price_e4"`
	Ask1PriceE4            int64         `json:"ask1_price_e4"`
	LastTickDirection      TickDirection `json:"last_tick_direction"`
	PrevPrice24hE4         int64         `json:"prev_price_24h_e4"`
	Prev24hPcntE4          int64         `json:"prev_24h_pcnt_e4"`
	HighPrice24hE4         int64         `json:"high_price_24h_e4"`
	LowPrice24hE4          int64         `json:"low_price_24h_e4"`
	PrevPrice1hE4          int64         `json:"prev_price_1h_e4"`
	Price1hPcntE4          int64         `json:"price_1h_pcnt_e4"`
	MarkPriceE4            int64         `json:"mark_price_e4"`
	IndexPriceE4           int64         `json:"index_price_e4"`
	OpenInterest           int64         `json:"open_interest"`
	OpenValueE8            int64         `json:"open_value_e8"`
	TotalTurnoverE8        int64         `json:"total_turnover_e8"`
	Turnover24hE8          int64         `json:"turnover_24h_e8"`
	TotalVolume            int64         `json:"total_volume"`
	Volume24h              int64         `json:"volume_24h"`
	FundingRateE6          int64         `json:"funding_rate_e6"`
	PredictedFundingRateE6 int64         `json:"predicted_funding_rate_e6"`
	CrossSeq               int64         `json:"cross_seq"`
	CreatedAt              string        `json:"created_at"`
	UpdatedAt              string        `json:"updated_at"`
	NextFundingTime        string        `json:"next_funding_time"`
	CountdownHour          int64         `json:"countdown_hour"`
}

type InstrumentInfoDeltaItem struct {
	ID              int64  `json:"id"`
	Symbol          string `json:"symbol"`
	PrevPrice24hE4  int64  `json:"prev_price_24h_e4"`
	Prev24hPcntE4   int64  `json:"prev_24h_pcnt_e4"`
	OpenValueE8     int64  `json:"open_value_e8"`
	TotalTurnoverE8 int64  `json:"total_turnover_e8"`
	Turnover24hE8   int64  `json:"turnover_24h_e8"`
	Volume24h       int64  `json:"volume_24h"`
	CrossSeq        int64  `json:"cross_seq"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type InstrumentInfoDelta struct {
	Delete []InstrumentInfoDeltaItem `json:"delete"`
	Update []InstrumentInfoDeltaItem `json:"update"`
	Insert []InstrumentInfoDeltaItem `json:"insert"`
}

type Kline struct {
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	Open      Float  `json:"open"`
	Close     Float  `json:"close"`
	High      Float  `json:"high"`
	Low       Float  `json:"low"`
	Volume    Float  `json:"volume"`
	Turnover  Float  `json:"turnover"`
	Confirm   bool   `json:"confirm"`
	CrossSeq  int64  `json:"cross_seq"`
	Timestamp int64  `json:"timestamp"`
}

// Liquidation frames are matched strictly: any field not listed here makes
// the frame a different shape.
type Liquidation struct {
	Symbol string `json:"symbol"`
	Side   Side   `json:"side"`
	Price  Float  `json:"price"`
	Qty    Float  `json:"qty"`
	Time   int64  `json:"time"`
}

type Position struct {
	UserID           int64          `json:"user_id"`
	Symbol           string         `json:"symbol"`
	Size             int64          `json:"size"`
	Side             Side           `json:"side"`
	PositionValue    Float          `json:"position_value"`
	EntryPrice       Float          `json:"entry_price"`
	LiqPrice         Float          `json:"liq_price"`
	BustPrice        Float          `json:"bust_price"`
	Leverage         Float          `json:"leverage"`
	OrderMargin      Float          `json:"order_margin"`
	PositionMargin   Float          `json:"position_margin"`
	AvailableBalance Float          `json:"available_balance"`
	TakeProfit       Float          `json:"take_profit"`
	TpTriggerBy      TriggerPrice   `json:"tp_trigger_by"`
	StopLoss         Float          `json:"stop_loss"`
	SlTriggerBy      TriggerPrice   `json:"sl_trigger_by"`
	RealisedPnl      Float          `json:"realised_pnl"`
	TrailingStop     Float          `json:"trailing_stop"`
	TrailingActive   Float          `json:"trailing_active"`
	WalletBalance    Float          `json:"wallet_balance"`
	RiskID           int64          `json:"risk_id"`
	OccClosingFee    Float          `json:"occ_closing_fee"`
	OccFundingFee    Float          `json:"occ_funding_fee"`
	AutoAddMargin    int64          `json:"auto_add_margin"`
	CumRealisedPnl   Float          `json:"cum_realised_pnl"`
	PositionStatus   PositionStatus `json:"position_status"`
	PositionSeq      int64          `json:"position_seq"`
}

type Execution struct {
	Symbol      string   `json:"symbol"`
	Side        Side     `json:"side"`
	OrderID     string   `json:"order_id"`
	ExecID      string   `json:"exec_id"`
	OrderLinkID string   `json:"order_link_id"`
	Price       Float    `json:"price"`
	OrderQty    int64    `json:"order_qty"`
	ExecType    ExecType `json:"exec_type"`
	ExecQty     int64    `json:"exec_qty"`
	ExecFee     Float    `json:"exec_fee"`
	LeavesQty   int64    `json:"leaves_qty"`
	IsMaker     bool     `json:"is_maker"`
	TradeTime   string   `json:"trade_time"`
}

// OrderUpdate is an order state change pushed on the private order topic.
type OrderUpdate struct {
	OrderID        string        `json:"order_id"`
	OrderLinkID    string        `json:"order_link_id"`
	Symbol         string        `json:"symbol"`
	Side           Side          `json:"side"`
	OrderType      OrderType     `json:"order_type"`
	Price          Float         `json:"price"`
	Qty            int64         `json:"qty"`
	TimeInForce    TimeInForce   `json:"time_in_force"`
	CreateType     *CreateType   `json:"create_type,omitempty"`
	CancelType     *CancelType   `json:"cancel_type,omitempty"`
	OrderStatus    OrderStatus   `json:"order_status"`
	LeavesQty      Float         `json:"leaves_qty"`
	CumExecQty     Float         `json:"cum_exec_qty"`
	CumExecValue   OptionalFloat `json:"cum_exec_value,omitempty"`
	CumExecFee     OptionalFloat `json:"cum_exec_fee,omitempty"`
	TakeProfit     Float         `json:"take_profit"`
	StopLoss       Float         `json:"stop_loss"`
	TrailingStop   Float         `json:"trailing_stop"`
	TrailingActive Float         `json:"trailing_active"`
	ReduceOnly     bool          `json:"reduce_only"`
	CloseOnTrigger bool          `json:"close_on_trigger"`
	Timestamp      string        `json:"timestamp"`
}

// StopOrderUpdate is a conditional order state change pushed on the private
// stop_order topic.
type StopOrderUpdate struct {
	OrderID        string          `json:"order_id"`
	OrderLinkID    string          `json:"order_link_id"`
	UserID         int64           `json:"user_id"`
	Symbol         string          `json:"symbol"`
	Side           Side            `json:"side"`
	OrderType      OrderType       `json:"order_type"`
	Price          Float           `json:"price"`
	Qty            int64           `json:"qty"`
	TimeInForce    TimeInForce     `json:"time_in_force"`
	CreateType     CreateType      `json:"create_type"`
	CancelType     CancelType      `json:"cancel_type"`
	OrderStatus    StopOrderStatus `json:"order_status"`
	StopOrderType  StopOrderType   `json:"stop_order_type"`
	TriggerBy      TriggerPrice    `json:"trigger_by"`
	TriggerPrice   Float           `json:"trigger_price"`
	CloseOnTrigger bool            `json:"close_on_trigger"`
	Timestamp      string          `json:"timestamp"`
}

func (OrderbookItem) EventKind() EventKind          { return EventOrderbookSnapshot }
func (OrderbookDelta) EventKind() EventKind         { return EventOrderbookDelta }
func (Trade) EventKind() EventKind                  { return EventTrade }
func (Insurance) EventKind() EventKind              { return EventInsurance }
func (InstrumentInfoSnapshot) EventKind() EventKind { return EventInstrumentInfoSnapshot }
func (InstrumentInfoDelta) EventKind() EventKind    { return EventInstrumentInfoDelta }
func (Kline) EventKind() EventKind                  { return EventKline }
func (Liquidation) EventKind() EventKind            { return EventLiquidation }
func (Position) EventKind() EventKind               { return EventPosition }
func (Execution) EventKind() EventKind              { return EventExecution }
func (OrderUpdate) EventKind() EventKind            { return EventOrder }
func (StopOrderUpdate) EventKind() EventKind        { return EventStopOrder }
