package interfaces

import (
	"context"

	"github.com/tradingiq/bybit-client/types"
)

// EventSink receives events pulled from a StreamClient.
type EventSink interface {
	Publish(ctx context.Context, event types.Event) error
	Close() error
}
