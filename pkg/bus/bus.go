// Package bus carries messages between chat adapters and the robot.
// Adapters publish inbound events and consume the outbound channel
// registered under their name.
package bus

import (
	"fmt"
	"sync"
)

const defaultBuffer = 64

type MessageBus struct {
	inbound chan InboundMessage

	mu       sync.RWMutex
	outbound map[string]chan OutboundMessage
}

func NewMessageBus() *MessageBus {
	return &MessageBus{
		inbound:  make(chan InboundMessage, defaultBuffer),
		outbound: make(map[string]chan OutboundMessage),
	}
}

// PublishInbound hands an adapter event to the robot. It blocks if the
// robot falls more than a buffer's worth behind.
func (b *MessageBus) PublishInbound(msg InboundMessage) {
	b.inbound <- msg
}

// Inbound is the robot-side receive channel.
func (b *MessageBus) Inbound() <-chan InboundMessage {
	return b.inbound
}

// RegisterOutbound creates (or returns) the outbound channel for the named
// adapter. Each adapter consumes its own channel.
func (b *MessageBus) RegisterOutbound(adapter string) <-chan OutboundMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.outbound[adapter]
	if !ok {
		ch = make(chan OutboundMessage, defaultBuffer)
		b.outbound[adapter] = ch
	}
	return ch
}

// PublishOutbound routes an outgoing message to its adapter's channel.
// Returns an error if no adapter registered under that name.
func (b *MessageBus) PublishOutbound(msg OutboundMessage) error {
	b.mu.RLock()
	ch, ok := b.outbound[msg.Adapter]
	b.mu.RUnlock()

	if !ok {
		return fmt.Errorf("no outbound channel for adapter %q", msg.Adapter)
	}
	ch <- msg
	return nil
}
