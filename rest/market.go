package rest

import (
	"context"

	"github.com/tradingiq/bybit-client/types"
)

// ServerTime returns the server clock as reported in time_now.
func (c *Client) ServerTime(ctx context.Context) (string, error) {
	env, err := c.get(ctx, "/v2/public/time", nil, false, nil)
	if err != nil {
		return "", err
	}
	return env.TimeNow, nil
}

func (c *Client) Symbols(ctx context.Context) (types.Symbols, error) {
	var symbols types.Symbols
	if _, err := c.get(ctx, "/v2/public/symbols", nil, false, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

type tickerParams struct {
	Symbol string `url:"symbol,omitempty"`
}

// Tickers returns the ticker of symbol, or of every symbol when symbol is
// empty.
func (c *Client) Tickers(ctx context.Context, symbol string) (types.Tickers, error) {
	var tickers types.Tickers
	if _, err := c.get(ctx, "/v2/public/tickers", tickerParams{Symbol: symbol}, false, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

func (c *Client) Announcements(ctx context.Context) ([]types.Announcement, error) {
	var announcements []types.Announcement
	if _, err := c.get(ctx, "/v2/public/announcement", nil, false, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (c *Client) LiquidatedOrders(ctx context.Context, filter types.LiquidatedOrdersFilter) ([]types.LiquidatedOrder, error) {
	var orders []types.LiquidatedOrder
	if _, err := c.get(ctx, "/v2/public/liq-records", filter, false, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
