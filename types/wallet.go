package types

import "sort"

type Wallet struct {
	Equity           Float `json:"equity"`
	AvailableBalance Float `json:"available_balance"`
	UsedMargin       Float `json:"used_margin"`
	OrderMargin      Float `json:"order_margin"`
	PositionMargin   Float `json:"position_margin"`
	OccClosingFee    Float `json:"occ_closing_fee"`
	OccFundingFee    Float `json:"occ_funding_fee"`
	WalletBalance    Float `json:"wallet_balance"`
	RealisedPnl      Float `json:"realised_pnl"`
	UnrealisedPnl    Float `json:"unrealised_pnl"`
	CumRealisedPnl   Float `json:"cum_realised_pnl"`
	GivenCash        Float `json:"given_cash"`
	ServiceCash      Float `json:"service_cash"`
}

// Wallets maps a coin to its wallet.
type Wallets map[string]Wallet

func (w Wallets) Get(coin string) (Wallet, bool) {
	wallet, ok := w[coin]
	return wallet, ok
}

// Currencies returns the coins in lexical order.
func (w Wallets) Currencies() []string {
	coins := make([]string, 0, len(w))
	for coin := range w {
		coins = append(coins, coin)
	}
	sort.Strings(coins)
	return coins
}

type WalletFundRecord struct {
	UserID        int64          `json:"user_id"`
	Coin          string         `json:"coin"`
	Type          WalletFundType `json:"type"`
	Amount        Float          `json:"amount"`
	TxID          string         `json:"tx_id"`
	Address       string         `json:"address"`
	WalletBalance Float          `json:"wallet_balance"`
	ExecTime      string         `json:"exec_time"`
	CrossSeq      int64          `json:"cross_seq"`
}
