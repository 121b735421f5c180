package websocket

import "github.com/tradingiq/bybit-client/types"

// eventBuffer is an unbounded FIFO of events decoded ahead of the caller.
type eventBuffer struct {
	items []types.Event
	head  int
}

func (b *eventBuffer) push(events ...types.Event) {
	b.items = append(b.items, events...)
}

func (b *eventBuffer) pop() (types.Event, bool) {
	if b.head == len(b.items) {
		return nil, false
	}
	e := b.items[b.head]
	b.items[b.head] = nil
	b.head++

	if b.head == len(b.items) {
		b.items = b.items[:0]
		b.head = 0
	} else if b.head > 64 && b.head*2 > len(b.items) {
		n := copy(b.items, b.items[b.head:])
		b.items = b.items[:n]
		b.head = 0
	}
	return e, true
}

func (b *eventBuffer) len() int {
	return len(b.items) - b.head
}
