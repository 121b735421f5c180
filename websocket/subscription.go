package websocket

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tradingiq/bybit-client/types"
)

// Subscribe subscribes to each channel in order, waiting for the server to
// confirm one before requesting the next. Confirmed channels are added to the
// active set immediately, so a failure leaves earlier channels subscribed.
// Subscribing twice to the same channel records it twice.
func (c *Client) Subscribe(ctx context.Context, channels ...types.Channel) error {
	if c.conn == nil {
		return ErrNotConnected
	}
	for _, channel := range channels {
		if channel.RequiresAuthentication() && !c.IsAuthenticated() {
			return &ChannelError{Op: types.OpSubscribe, Channel: channel, Err: ErrNotAuthenticated}
		}
	}

	return c.roundTrip(ctx, types.OpSubscribe, channels, func(channel types.Channel) {
		c.channels = append(c.channels, channel)
	})
}

// Unsubscribe removes each channel from the active set once the server has
// confirmed it.
func (c *Client) Unsubscribe(ctx context.Context, channels ...types.Channel) error {
	if c.conn == nil {
		return ErrNotConnected
	}
	for _, channel := range channels {
		if !c.subscribed(channel) {
			return &ChannelError{Op: types.OpUnsubscribe, Channel: channel, Err: ErrNotSubscribed}
		}
	}

	return c.roundTrip(ctx, types.OpUnsubscribe, channels, c.remove)
}

func (c *Client) UnsubscribeAll(ctx context.Context) error {
	return c.Unsubscribe(ctx, c.Channels()...)
}

func (c *Client) subscribed(channel types.Channel) bool {
	for _, active := range c.channels {
		if active == channel {
			return true
		}
	}
	return false
}

func (c *Client) remove(channel types.Channel) {
	kept := c.channels[:0]
	for _, active := range c.channels {
		if active != channel {
			kept = append(kept, active)
		}
	}
	c.channels = kept
}

func (c *Client) roundTrip(ctx context.Context, op string, channels []types.Channel, commit func(types.Channel)) error {
	for _, channel := range channels {
		topic := channel.Topic()

		if err := c.Send(ctx, types.Request{Op: op, Args: []string{topic}}); err != nil {
			return err
		}
		c.logger.Info("Sent request", zap.String("op", op), zap.String("topic", topic))

		if err := c.awaitConfirmation(ctx, op, channel); err != nil {
			return err
		}

		commit(channel)
		c.metrics.setSubscriptions(len(c.channels))
		c.logger.Info("Request confirmed", zap.String("op", op), zap.String("topic", topic))
	}
	return nil
}

// awaitConfirmation reads up to SubscriptionLookahead frames looking for the
// ack of op on channel. Data frames read meanwhile are buffered for Next.
func (c *Client) awaitConfirmation(ctx context.Context, op string, channel types.Channel) error {
	topic := channel.Topic()

	for i := 0; i < SubscriptionLookahead; i++ {
		resp, err := c.nextResponse(ctx)
		if err != nil {
			var decodeErr *DecodeError
			if errors.As(err, &decodeErr) {
				return &ChannelError{Op: op, Channel: channel, Err: err}
			}
			return err
		}

		if resp.Shape == ShapeAck && resp.Ack.Matches(op, topic) {
			if !resp.Ack.Success {
				c.logger.Warn("Request rejected",
					zap.String("op", op),
					zap.String("topic", topic),
					zap.String("ret_msg", resp.Ack.RetMsg))
				return &ChannelError{Op: op, Channel: channel, Err: ErrSubscriptionFailed}
			}
			return nil
		}

		c.handle(resp)
	}

	c.logger.Warn("No confirmation received", zap.String("op", op), zap.String("topic", topic))
	return &ChannelError{Op: op, Channel: channel, Err: ErrMissingConfirmation}
}
