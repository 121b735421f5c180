package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTopic is returned by ParseChannel for topics outside the catalog.
var ErrUnknownTopic = errors.New("unknown topic")

type ChannelKind int

const (
	KindOrderBook25 ChannelKind = iota + 1
	KindOrderBook200
	KindTrade
	KindInsurance
	KindInstrumentInfo
	KindKlineV2
	KindLiquidation

	KindPosition
	KindExecution
	KindOrder
	KindStopOrder
)

const (
	topicOrderBook25    = "orderBookL2_25"
	topicOrderBook200   = "orderBookL2_200"
	topicTrade          = "trade"
	topicInsurance      = "insurance"
	topicInstrumentInfo = "instrument_info"
	topicKlineV2        = "klineV2"
	topicLiquidation    = "liquidation"
	topicPosition       = "position"
	topicExecution      = "execution"
	topicOrder          = "order"
	topicStopOrder      = "stop_order"
)

// Channel identifies a subscribable topic. Channels are comparable and two
// channels are equal when their kind and parameters match.
type Channel struct {
	Kind     ChannelKind
	Symbol   string
	Interval string
}

func OrderBook25Channel(symbol string) Channel {
	return Channel{Kind: KindOrderBook25, Symbol: symbol}
}

func OrderBook200Channel(symbol string) Channel {
	return Channel{Kind: KindOrderBook200, Symbol: symbol}
}

func TradeChannel() Channel {
	return Channel{Kind: KindTrade}
}

func InsuranceChannel() Channel {
	return Channel{Kind: KindInsurance}
}

func InstrumentInfoChannel(symbol, interval string) Channel {
	return Channel{Kind: KindInstrumentInfo, Symbol: symbol, Interval: interval}
}

func KlineV2Channel(symbol, interval string) Channel {
	return Channel{Kind: KindKlineV2, Symbol: symbol, Interval: interval}
}

func LiquidationChannel() Channel {
	return Channel{Kind: KindLiquidation}
}

func PositionChannel() Channel {
	return Channel{Kind: KindPosition}
}

func ExecutionChannel() Channel {
	return Channel{Kind: KindExecution}
}

func OrderChannel() Channel {
	return Channel{Kind: KindOrder}
}

func StopOrderChannel() Channel {
	return Channel{Kind: KindStopOrder}
}

// Topic returns the wire topic of the channel.
func (c Channel) Topic() string {
	switch c.Kind {
	case KindOrderBook25:
		return topicOrderBook25 + "." + c.Symbol
	case KindOrderBook200:
		return topicOrderBook200 + "." + c.Symbol
	case KindTrade:
		return topicTrade
	case KindInsurance:
		return topicInsurance
	case KindInstrumentInfo:
		return fmt.Sprintf("%s.%s.%s", topicInstrumentInfo, c.Interval, c.Symbol)
	case KindKlineV2:
		return fmt.Sprintf("%s.%s.%s", topicKlineV2, c.Interval, c.Symbol)
	case KindLiquidation:
		return topicLiquidation
	case KindPosition:
		return topicPosition
	case KindExecution:
		return topicExecution
	case KindOrder:
		return topicOrder
	case KindStopOrder:
		return topicStopOrder
	default:
		return ""
	}
}

// RequiresAuthentication reports whether the channel is private.
func (c Channel) RequiresAuthentication() bool {
	switch c.Kind {
	case KindPosition, KindExecution, KindOrder, KindStopOrder:
		return true
	default:
		return false
	}
}

func (c Channel) String() string {
	return c.Topic()
}

// ParseChannel maps a wire topic back to its channel.
func ParseChannel(topic string) (Channel, error) {
	switch topic {
	case topicTrade:
		return TradeChannel(), nil
	case topicInsurance:
		return InsuranceChannel(), nil
	case topicLiquidation:
		return LiquidationChannel(), nil
	case topicPosition:
		return PositionChannel(), nil
	case topicExecution:
		return ExecutionChannel(), nil
	case topicOrder:
		return OrderChannel(), nil
	case topicStopOrder:
		return StopOrderChannel(), nil
	}

	name, rest, ok := strings.Cut(topic, ".")
	if !ok || rest == "" {
		return Channel{}, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}

	switch name {
	case topicOrderBook25:
		return OrderBook25Channel(rest), nil
	case topicOrderBook200:
		return OrderBook200Channel(rest), nil
	case topicInstrumentInfo, topicKlineV2:
		interval, symbol, ok := strings.Cut(rest, ".")
		if !ok || interval == "" || symbol == "" {
			return Channel{}, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
		}
		if name == topicKlineV2 {
			return KlineV2Channel(symbol, interval), nil
		}
		return InstrumentInfoChannel(symbol, interval), nil
	}

	return Channel{}, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
}

// ParseChannels parses every topic, stopping at the first unknown one.
func ParseChannels(topics []string) ([]Channel, error) {
	channels := make([]Channel, 0, len(topics))
	for _, topic := range topics {
		channel, err := ParseChannel(strings.TrimSpace(topic))
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}
	return channels, nil
}
