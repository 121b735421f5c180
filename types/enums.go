package types

type Side string

const (
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

type OrderType string

const (
	OrderTypeLimit  OrderType = "Limit"
	OrderTypeMarket OrderType = "Market"
)

type TimeInForce string

const (
	GoodTillCancel    TimeInForce = "GoodTillCancel"
	ImmediateOrCancel TimeInForce = "ImmediateOrCancel"
	FillOrKill        TimeInForce = "FillOrKill"
	PostOnly          TimeInForce = "PostOnly"
)

// TriggerPrice is the price type a conditional order or TP/SL triggers on.
type TriggerPrice string

const (
	TriggerUnknown    TriggerPrice = "UNKNOWN"
	TriggerLastPrice  TriggerPrice = "LastPrice"
	TriggerIndexPrice TriggerPrice = "IndexPrice"
	TriggerMarkPrice  TriggerPrice = "MarkPrice"
)

type TickDirection string

const (
	PlusTick      TickDirection = "PlusTick"
	ZeroPlusTick  TickDirection = "ZeroPlusTick"
	MinusTick     TickDirection = "MinusTick"
	ZeroMinusTick TickDirection = "ZeroMinusTick"
)

type OrderStatus string

const (
	OrderStatusCreated         OrderStatus = "Created"
	OrderStatusRejected        OrderStatus = "Rejected"
	OrderStatusNew             OrderStatus = "New"
	OrderStatusPartiallyFilled OrderStatus = "PartiallyFilled"
	OrderStatusFilled          OrderStatus = "Filled"
	OrderStatusCancelled       OrderStatus = "Cancelled"
	OrderStatusPendingCancel   OrderStatus = "PendingCancel"
	OrderStatusUntriggered     OrderStatus = "Untriggered"
	OrderStatusTriggered       OrderStatus = "Triggered"
)

type StopOrderStatus string

const (
	StopOrderStatusActive      StopOrderStatus = "Active"
	StopOrderStatusUntriggered StopOrderStatus = "Untriggered"
	StopOrderStatusTriggered   StopOrderStatus = "Triggered"
	StopOrderStatusCancelled   StopOrderStatus = "Cancelled"
	StopOrderStatusRejected    StopOrderStatus = "Rejected"
	StopOrderStatusDeactivated StopOrderStatus = "Deactivated"
)

type StopOrderType string

const (
	StopOrderTakeProfit   StopOrderType = "TakeProfit"
	StopOrderStopLoss     StopOrderType = "StopLoss"
	StopOrderTrailingStop StopOrderType = "TrailingStop"
	StopOrderStop         StopOrderType = "Stop"
)

type CancelType string

const (
	CancelUnknown            CancelType = "UNKNOWN"
	CancelByUser             CancelType = "CancelByUser"
	CancelByReduceOnly       CancelType = "CancelByReduceOnly"
	CancelByPrepareLiq       CancelType = "CancelByPrepareLiq"
	CancelAllBeforeLiq       CancelType = "CancelAllBeforeLiq"
	CancelByPrepareAdl       CancelType = "CancelByPrepareAdl"
	CancelAllBeforeAdl       CancelType = "CancelAllBeforeAdl"
	CancelByAdmin            CancelType = "CancelByAdmin"
	CancelByTpSlTsClear      CancelType = "CancelByTpSlTsClear"
	CancelByPositionSideFlip CancelType = "CancelByPzSideCh"
)

type CreateType string

const (
	CreateByUser                CreateType = "CreateByUser"
	CreateByClosing             CreateType = "CreateByClosing"
	CreateByAdminClosing        CreateType = "CreateByAdminClosing"
	CreateByStopOrder           CreateType = "CreateByStopOrder"
	CreateByTrailingStop        CreateType = "CreateByTrailingStop"
	CreateByTakeProfit          CreateType = "CreateByTakeProfit"
	CreateByStopLoss            CreateType = "CreateByStopLoss"
	CreateByLiq                 CreateType = "CreateByLiq"
	CreateByAdlPassThrough      CreateType = "CreateByAdl_PassThrough"
	CreateByTakeOverPassThrough CreateType = "CreateByTakeOver_PassThrough"
)

type ExecType string

const (
	ExecTypeTrade     ExecType = "Trade"
	ExecTypeAdlTrade  ExecType = "AdlTrade"
	ExecTypeFunding   ExecType = "Funding"
	ExecTypeBustTrade ExecType = "BustTrade"
)

type PositionStatus string

const (
	PositionNormal PositionStatus = "Normal"
	PositionLiq    PositionStatus = "Liq"
	PositionAdl    PositionStatus = "Adl"
)

type ContractStatus string

const (
	ContractTrading  ContractStatus = "Trading"
	ContractSettling ContractStatus = "Settling"
	ContractClosed   ContractStatus = "Closed"
	ContractPending  ContractStatus = "Pending"
)

type WalletFundType string

const (
	FundDeposit               WalletFundType = "Deposit"
	FundWithdraw              WalletFundType = "Withdraw"
	FundRealisedPnl           WalletFundType = "RealisedPNL"
	FundCommission            WalletFundType = "Commission"
	FundRefund                WalletFundType = "Refund"
	FundPrize                 WalletFundType = "Prize"
	FundExchangeOrderWithdraw WalletFundType = "ExchangeOrderWithdraw"
	FundExchangeOrderDeposit  WalletFundType = "ExchangeOrderDeposit"
)
