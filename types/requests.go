package types

// ActiveOrderID selects an order either by exchange id or by the
// client supplied link id. Exactly one should be set.
type ActiveOrderID struct {
	OrderID     string `json:"order_id,omitempty" url:"order_id,omitempty"`
	OrderLinkID string `json:"order_link_id,omitempty" url:"order_link_id,omitempty"`
}

func ByOrderID(id string) ActiveOrderID {
	return ActiveOrderID{OrderID: id}
}

func ByOrderLinkID(id string) ActiveOrderID {
	return ActiveOrderID{OrderLinkID: id}
}

// PlaceOrderRequest creates an active or conditional order. BasePrice,
// StopPx and TriggerBy only apply to conditional orders.
type PlaceOrderRequest struct {
	Symbol         string       `json:"symbol" url:"symbol"`
	Side           Side         `json:"side" url:"side"`
	Qty            float64      `json:"qty" url:"qty"`
	OrderType      OrderType    `json:"order_type" url:"order_type"`
	Price          *float64     `json:"price,omitempty" url:"price,omitempty"`
	TimeInForce    TimeInForce  `json:"time_in_force" url:"time_in_force"`
	CloseOnTrigger *bool        `json:"close_on_trigger,omitempty" url:"close_on_trigger,omitempty"`
	OrderLinkID    string       `json:"order_link_id,omitempty" url:"order_link_id,omitempty"`
	TakeProfit     *float64     `json:"take_profit,omitempty" url:"take_profit,omitempty"`
	StopLoss       *float64     `json:"stop_loss,omitempty" url:"stop_loss,omitempty"`
	TpTriggerBy    TriggerPrice `json:"tp_trigger_by,omitempty" url:"tp_trigger_by,omitempty"`
	SlTriggerBy    TriggerPrice `json:"sl_trigger_by,omitempty" url:"sl_trigger_by,omitempty"`
	ReduceOnly     *bool        `json:"reduce_only,omitempty" url:"reduce_only,omitempty"`
	BasePrice      string       `json:"base_price,omitempty" url:"base_price,omitempty"`
	StopPx         string       `json:"stop_px,omitempty" url:"stop_px,omitempty"`
	TriggerBy      TriggerPrice `json:"trigger_by,omitempty" url:"trigger_by,omitempty"`
}

type ListOrdersFilter struct {
	Symbol      string      `url:"symbol"`
	OrderStatus OrderStatus `url:"order_status,omitempty"`
	Direction   string      `url:"direction,omitempty"`
	Limit       int         `url:"limit,omitempty"`
	Cursor      string      `url:"cursor,omitempty"`
}

type WalletFundRecordsFilter struct {
	StartDate      string         `url:"start_date,omitempty"`
	EndDate        string         `url:"end_date,omitempty"`
	Currency       string         `url:"currency,omitempty"`
	WalletFundType WalletFundType `url:"wallet_fund_type,omitempty"`
	Page           int            `url:"page,omitempty"`
	Limit          int            `url:"limit,omitempty"`
}

type LiquidatedOrdersFilter struct {
	Symbol    string `url:"symbol"`
	From      int64  `url:"from,omitempty"`
	Limit     int    `url:"limit,omitempty"`
	StartTime int64  `url:"start_time,omitempty"`
	EndTime   int64  `url:"end_time,omitempty"`
}
