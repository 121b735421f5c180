package interfaces

import (
	"context"

	"github.com/tradingiq/bybit-client/types"
)

// StreamClient is a pull based streaming connection.
type StreamClient interface {
	Connect(ctx context.Context) error

	Close() error

	Subscribe(ctx context.Context, channels ...types.Channel) error

	Unsubscribe(ctx context.Context, channels ...types.Channel) error

	UnsubscribeAll(ctx context.Context) error

	// Next blocks until an event is available.
	Next(ctx context.Context) (types.Event, error)

	IsConnected() bool
	IsAuthenticated() bool
	Channels() []types.Channel
}

// MarketClient covers the public REST endpoints.
type MarketClient interface {
	ServerTime(ctx context.Context) (string, error)
	Symbols(ctx context.Context) (types.Symbols, error)
	Tickers(ctx context.Context, symbol string) (types.Tickers, error)
	Announcements(ctx context.Context) ([]types.Announcement, error)
	LiquidatedOrders(ctx context.Context, filter types.LiquidatedOrdersFilter) ([]types.LiquidatedOrder, error)
}

// TradingClient covers the signed REST endpoints.
type TradingClient interface {
	WalletBalance(ctx context.Context, coin string) (types.Wallets, error)
	WalletFundRecords(ctx context.Context, filter types.WalletFundRecordsFilter) ([]types.WalletFundRecord, error)

	PlaceActiveOrder(ctx context.Context, order types.PlaceOrderRequest) (*types.Order, error)
	ReplaceActiveOrder(ctx context.Context, id types.ActiveOrderID, symbol string, price float64) (string, error)
	CancelActiveOrder(ctx context.Context, id types.ActiveOrderID, symbol string) error
	CancelAllActiveOrders(ctx context.Context, symbol string) ([]string, error)
	QueryActiveOrder(ctx context.Context, id types.ActiveOrderID, symbol string) (*types.Order, error)
	ListActiveOrders(ctx context.Context, filter types.ListOrdersFilter) ([]types.Order, error)
	PlaceConditionalOrder(ctx context.Context, order types.PlaceOrderRequest) (*types.ConditionalOrder, error)
}
