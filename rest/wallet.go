package rest

import (
	"context"

	"github.com/tradingiq/bybit-client/types"
)

type walletParams struct {
	Coin string `url:"coin,omitempty"`
}

// WalletBalance returns the wallet of coin, or every wallet when coin is
// empty.
func (c *Client) WalletBalance(ctx context.Context, coin string) (types.Wallets, error) {
	wallets := types.Wallets{}
	if _, err := c.get(ctx, "/v2/private/wallet/balance", walletParams{Coin: coin}, true, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (c *Client) WalletFundRecords(ctx context.Context, filter types.WalletFundRecordsFilter) ([]types.WalletFundRecord, error) {
	var result struct {
		Data []types.WalletFundRecord `json:"data"`
	}
	if _, err := c.get(ctx, "/v2/private/wallet/fund/records", filter, true, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}
