package types

// Order is an active order as returned by the REST API.
type Order struct {
	OrderID       string        `json:"order_id"`
	UserID        int64         `json:"user_id"`
	OrderLinkID   string        `json:"order_link_id"`
	Price         Float         `json:"price"`
	Qty           Float         `json:"qty"`
	Symbol        string        `json:"symbol"`
	Side          Side          `json:"side"`
	OrderStatus   OrderStatus   `json:"order_status"`
	OrderType     OrderType     `json:"order_type"`
	LastExecTime  Float         `json:"last_exec_time"`
	LastExecPrice OptionalFloat `json:"last_exec_price"`
	TimeInForce   TimeInForce   `json:"time_in_force"`
	CreateType    *CreateType   `json:"create_type,omitempty"`
	CancelType    *CancelType   `json:"cancel_type,omitempty"`
	LeavesQty     Float         `json:"leaves_qty"`
	LeavesValue   OptionalFloat `json:"leaves_value"`
	CumExecQty    Float         `json:"cum_exec_qty"`
	CumExecValue  OptionalFloat `json:"cum_exec_value"`
	CumExecFee    OptionalFloat `json:"cum_exec_fee"`
	RejectReason  string        `json:"reject_reason"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
	TakeProfit    Float         `json:"take_profit"`
	StopLoss      Float         `json:"stop_loss"`
	TpTriggerBy   TriggerPrice  `json:"tp_trigger_by"`
	SlTriggerBy   TriggerPrice  `json:"sl_trigger_by"`
}

// ConditionalOrder is a stop order as returned by the REST API.
type ConditionalOrder struct {
	StopOrderID    string        `json:"stop_order_id"`
	UserID         int64         `json:"user_id"`
	OrderLinkID    string        `json:"order_link_id"`
	Price          Float         `json:"price"`
	Qty            Float         `json:"qty"`
	Symbol         string        `json:"symbol"`
	Side           Side          `json:"side"`
	OrderStatus    OrderStatus   `json:"order_status"`
	OrderType      OrderType     `json:"order_type"`
	LastExecPrice  OptionalFloat `json:"last_exec_price"`
	TimeInForce    TimeInForce   `json:"time_in_force"`
	ReduceOnly     bool          `json:"reduce_only"`
	CloseOnTrigger bool          `json:"close_on_trigger"`
	CreatedTime    string        `json:"created_time,omitempty"`
	UpdatedTime    string        `json:"updated_time,omitempty"`
	UpdatedAt      string        `json:"updated_at,omitempty"`
	TakeProfit     Float         `json:"take_profit"`
	StopLoss       Float         `json:"stop_loss"`
	TpTriggerBy    TriggerPrice  `json:"tp_trigger_by"`
	SlTriggerBy    TriggerPrice  `json:"sl_trigger_by"`
	PositionIdx    int64         `json:"position_idx"`
	TriggerBy      TriggerPrice  `json:"trigger_by"`
	BasePrice      string        `json:"base_price"`
	Remark         string        `json:"remark,omitempty"`
	RejectReason   string        `json:"reject_reason,omitempty"`
	StopPx         string        `json:"stop_px,omitempty"`
}
