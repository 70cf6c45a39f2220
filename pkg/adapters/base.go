// Package adapters contains the chat transports. Each adapter turns
// network events into bus inbound messages and plays back its outbound
// channel; none of them know anything about pattern matching.
package adapters

import (
	"sync/atomic"

	"github.com/hedwigbot/hedwig/pkg/bus"
)

// BaseAdapter carries what every adapter needs: its name, the bus, and an
// optional sender allow-list.
type BaseAdapter struct {
	name      string
	bus       *bus.MessageBus
	allowFrom map[string]bool
	running   atomic.Bool
}

func NewBaseAdapter(name string, b *bus.MessageBus, allowFrom []string) *BaseAdapter {
	allowed := make(map[string]bool, len(allowFrom))
	for _, id := range allowFrom {
		allowed[id] = true
	}
	return &BaseAdapter{
		name:      name,
		bus:       b,
		allowFrom: allowed,
	}
}

func (a *BaseAdapter) Name() string {
	return a.name
}

// allowed reports whether a sender passes the allow-list. An empty list
// allows everyone.
func (a *BaseAdapter) allowed(senderID string) bool {
	if len(a.allowFrom) == 0 {
		return true
	}
	return a.allowFrom[senderID]
}

func (a *BaseAdapter) setRunning(v bool) {
	a.running.Store(v)
}

func (a *BaseAdapter) IsRunning() bool {
	return a.running.Load()
}

func (a *BaseAdapter) publishInbound(senderID, senderName, chatID, content string) {
	a.bus.PublishInbound(bus.InboundMessage{
		Adapter:    a.name,
		SenderID:   senderID,
		SenderName: senderName,
		ChatID:     chatID,
		Content:    content,
	})
}

// outbound returns this adapter's send channel.
func (a *BaseAdapter) outbound() <-chan bus.OutboundMessage {
	return a.bus.RegisterOutbound(a.name)
}
