package types

// Ticker is the market summary returned by the tickers endpoint. Prices are
// kept as the decimal strings the API returns.
type Ticker struct {
	Symbol                 string        `json:"symbol"`
	BidPrice               string        `json:"bid_price"`
	AskPrice               string        `json:"ask_price"`
	LastPrice              string        `json:"last_price"`
	IndexPrice             string        `json:"index_price"`
	MarkPrice              string        `json:"mark_price"`
	LastTickDirection      TickDirection `json:"last_tick_direction"`
	PrevPrice24h           string        `json:"prev_price_24h"`
	Price24hPcnt           string        `json:"price_24h_pcnt"`
	HighPrice24h           string        `json:"high_price_24h"`
	LowPrice24h            string        `json:"low_price_24h"`
	PrevPrice1h            string        `json:"prev_price_1h"`
	Price1hPcnt            string        `json:"price_1h_pcnt"`
	OpenInterest           Float         `json:"open_interest"`
	OpenValue              string        `json:"open_value"`
	TotalTurnover          string        `json:"total_turnover"`
	Turnover24h            string        `json:"turnover_24h"`
	TotalVolume            Float         `json:"total_volume"`
	Volume24h              Float         `json:"volume_24h"`
	FundingRate            string        `json:"funding_rate"`
	PredictedFundingRate   string        `json:"predicted_funding_rate"`
	NextFundingTime        string        `json:"next_funding_time"`
	CountdownHour          int64         `json:"countdown_hour"`
	DeliveryFeeRate        string        `json:"delivery_fee_rate"`
	PredictedDeliveryPrice string        `json:"predicted_delivery_price"`
	DeliveryTime           string        `json:"delivery_time"`
}

type Tickers []Ticker

// Get returns the ticker for symbol.
func (t Tickers) Get(symbol string) (Ticker, bool) {
	for _, ticker := range t {
		if ticker.Symbol == symbol {
			return ticker, true
		}
	}
	return Ticker{}, false
}

type LeverageFilter struct {
	MinLeverage  Float  `json:"min_leverage"`
	MaxLeverage  Float  `json:"max_leverage"`
	LeverageStep string `json:"leverage_step"`
}

type PriceFilter struct {
	MinPrice string `json:"min_price"`
	MaxPrice string `json:"max_price"`
	TickSize string `json:"tick_size"`
}

type LotSizeFilter struct {
	MinTradingQty Float `json:"min_trading_qty"`
	MaxTradingQty Float `json:"max_trading_qty"`
	QtyStep       Float `json:"qty_step"`
}

// Symbol describes a tradable contract.
type Symbol struct {
	Name           string         `json:"name"`
	Alias          string         `json:"alias"`
	Status         ContractStatus `json:"status"`
	BaseCurrency   string         `json:"base_currency"`
	QuoteCurrency  string         `json:"quote_currency"`
	PriceScale     int64          `json:"price_scale"`
	TakerFee       string         `json:"taker_fee"`
	MakerFee       string         `json:"maker_fee"`
	LeverageFilter LeverageFilter `json:"leverage_filter"`
	PriceFilter    PriceFilter    `json:"price_filter"`
	LotSizeFilter  LotSizeFilter  `json:"lot_size_filter"`
}

type Symbols []Symbol

// Get returns the symbol called name.
func (s Symbols) Get(name string) (Symbol, bool) {
	for _, symbol := range s {
		if symbol.Name == name {
			return symbol, true
		}
	}
	return Symbol{}, false
}

type Announcement struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

type LiquidatedOrder struct {
	ID     int64  `json:"id"`
	Symbol string `json:"symbol"`
	Side   Side   `json:"side"`
	Qty    Float  `json:"qty"`
	Price  Float  `json:"price"`
}
