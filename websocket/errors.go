package websocket

import (
	"errors"
	"fmt"

	"github.com/tradingiq/bybit-client/types"
)

var (
	ErrNotConnected        = errors.New("websocket not connected")
	ErrNotAuthenticated    = errors.New("channel requires authentication")
	ErrNotSubscribed       = errors.New("channel not subscribed")
	ErrSubscriptionFailed  = errors.New("subscription rejected by server")
	ErrMissingConfirmation = errors.New("no confirmation received")
	ErrUnrecognizedFrame   = errors.New("unrecognized frame")
)

// ChannelError binds a subscription failure to the channel it concerns.
type ChannelError struct {
	Op      string
	Channel types.Channel
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Channel.Topic(), e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// TransportError is returned when the socket fails. The connection is torn
// down before it is returned.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned for a frame that could not be turned into events.
// The connection stays usable.
type DecodeError struct {
	Frame []byte
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode frame: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
