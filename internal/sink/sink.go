package sink

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tradingiq/bybit-client/interfaces"
	"github.com/tradingiq/bybit-client/types"
)

var (
	_ interfaces.EventSink = (*Log)(nil)
	_ interfaces.EventSink = (*Kafka)(nil)
	_ interfaces.EventSink = Multi(nil)
)

// Log writes every event to a zap logger.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger}
}

func (l *Log) Publish(_ context.Context, event types.Event) error {
	l.logger.Info("Received event",
		zap.String("kind", string(event.EventKind())),
		zap.Any("event", event))
	return nil
}

func (l *Log) Close() error {
	return nil
}

// Multi publishes each event to every sink in order and stops at the first
// failure.
type Multi []interfaces.EventSink

func (m Multi) Publish(ctx context.Context, event types.Event) error {
	for _, s := range m {
		if err := s.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
