package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/tradingiq/bybit-client/interfaces"
	"github.com/tradingiq/bybit-client/types"
)

var (
	_ interfaces.MarketClient  = (*Client)(nil)
	_ interfaces.TradingClient = (*Client)(nil)
)

type replaceParams struct {
	types.ActiveOrderID
	Symbol string  `json:"symbol" url:"symbol"`
	Price  float64 `json:"p_r_price" url:"p_r_price"`
}

type orderParams struct {
	types.ActiveOrderID
	Symbol string `json:"symbol" url:"symbol"`
}

type symbolParams struct {
	Symbol string `json:"symbol" url:"symbol"`
}

func checkOrderID(id types.ActiveOrderID) error {
	if id.OrderID == "" && id.OrderLinkID == "" {
		return ErrMissingOrderID
	}
	return nil
}

// PlaceActiveOrder creates an order. An order link id is generated when the
// request has none.
func (c *Client) PlaceActiveOrder(ctx context.Context, order types.PlaceOrderRequest) (*types.Order, error) {
	if order.OrderLinkID == "" {
		order.OrderLinkID = uuid.New().String()
	}

	var result types.Order
	if _, err := c.post(ctx, "/v2/private/order/create", order, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReplaceActiveOrder moves an order to price and returns its id.
func (c *Client) ReplaceActiveOrder(ctx context.Context, id types.ActiveOrderID, symbol string, price float64) (string, error) {
	if err := checkOrderID(id); err != nil {
		return "", err
	}

	var result struct {
		OrderID string `json:"order_id"`
	}
	params := replaceParams{ActiveOrderID: id, Symbol: symbol, Price: price}
	if _, err := c.post(ctx, "/v2/private/order/replace", params, &result); err != nil {
		return "", err
	}
	return result.OrderID, nil
}

func (c *Client) CancelActiveOrder(ctx context.Context, id types.ActiveOrderID, symbol string) error {
	if err := checkOrderID(id); err != nil {
		return err
	}
	_, err := c.post(ctx, "/v2/private/order/cancel", orderParams{ActiveOrderID: id, Symbol: symbol}, nil)
	return err
}

// CancelAllActiveOrders cancels every active order on symbol and returns the
// ids of the cancelled orders.
func (c *Client) CancelAllActiveOrders(ctx context.Context, symbol string) ([]string, error) {
	var result []struct {
		ClOrdID string `json:"clOrdID"`
	}
	if _, err := c.post(ctx, "/v2/private/order/cancelAll", symbolParams{Symbol: symbol}, &result); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result))
	for _, order := range result {
		ids = append(ids, order.ClOrdID)
	}
	return ids, nil
}

// QueryActiveOrder returns the order, or nil when the API has no result for
// it.
func (c *Client) QueryActiveOrder(ctx context.Context, id types.ActiveOrderID, symbol string) (*types.Order, error) {
	if err := checkOrderID(id); err != nil {
		return nil, err
	}

	var result types.Order
	env, err := c.get(ctx, "/v2/private/order", orderParams{ActiveOrderID: id, Symbol: symbol}, true, &result)
	if err != nil {
		return nil, err
	}
	if !env.hasResult() {
		return nil, nil
	}
	return &result, nil
}

func (c *Client) ListActiveOrders(ctx context.Context, filter types.ListOrdersFilter) ([]types.Order, error) {
	var result struct {
		Data []types.Order `json:"data"`
	}
	if _, err := c.get(ctx, "/v2/private/order/list", filter, true, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) PlaceConditionalOrder(ctx context.Context, order types.PlaceOrderRequest) (*types.ConditionalOrder, error) {
	var result types.ConditionalOrder
	if _, err := c.post(ctx, "/v2/private/stop-order/create", order, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
