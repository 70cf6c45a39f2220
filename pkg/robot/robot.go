// Package robot is the hosting process around the matching core: it owns
// the bot identity, the adapter set, the installed dispatch entries, and
// the inbound message loop.
package robot

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hedwigbot/hedwig/pkg/bus"
	"github.com/hedwigbot/hedwig/pkg/config"
	"github.com/hedwigbot/hedwig/pkg/logger"
	"github.com/hedwigbot/hedwig/pkg/match"
	"github.com/hedwigbot/hedwig/pkg/respond"
)

// Adapter is one chat transport. Start must return promptly, leaving its
// receive loops running until ctx is cancelled.
type Adapter interface {
	Name() string
	Start(ctx context.Context) error
}

type Robot struct {
	name     string
	alias    string
	bus      *bus.MessageBus
	adapters []Adapter

	mu      sync.RWMutex
	groups  []*respond.Responder
	entries atomic.Pointer[[]respond.DispatchEntry]
}

func New(cfg *config.Config, b *bus.MessageBus) *Robot {
	return &Robot{
		name:  cfg.Bot.Name,
		alias: cfg.Bot.Alias,
		bus:   b,
	}
}

func (r *Robot) Name() string {
	return r.name
}

// Identity is what addressed patterns are compiled against.
func (r *Robot) Identity() match.Identity {
	return match.Identity{Name: r.name, AKA: r.alias}
}

func (r *Robot) AddAdapter(a Adapter) {
	r.adapters = append(r.adapters, a)
}

// Install compiles every handler group against the robot's identity and
// swaps in the combined entry list. The previous generation is superseded,
// never mutated; in-flight dispatches keep the list they started with.
// A failure in any group leaves the previous generation active.
func (r *Robot) Install(groups []*respond.Responder, opts respond.Options) error {
	var all []respond.DispatchEntry
	for _, g := range groups {
		entries, err := respond.Install(g, r.Identity(), opts)
		if err != nil {
			return fmt.Errorf("install group %q: %w", g.Group(), err)
		}
		all = append(all, entries...)
	}

	r.mu.Lock()
	r.groups = groups
	r.mu.Unlock()
	r.entries.Store(&all)
	logger.InfoCF("robot", "handler groups installed", map[string]interface{}{
		"groups":  len(groups),
		"entries": len(all),
	})
	return nil
}

// Entries returns the currently installed dispatch entries.
func (r *Robot) Entries() []respond.DispatchEntry {
	if p := r.entries.Load(); p != nil {
		return *p
	}
	return nil
}

// Usage collects the help lines of every installed handler group, in
// group order.
func (r *Robot) Usage() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lines []string
	for _, g := range r.groups {
		lines = append(lines, g.UsageLines()...)
	}
	return lines
}

// Run starts all adapters and consumes inbound messages until ctx is
// cancelled. Every inbound event is dispatched against the current entry
// generation; handlers run on their own goroutines and never block this
// loop.
func (r *Robot) Run(ctx context.Context) error {
	for _, a := range r.adapters {
		if err := a.Start(ctx); err != nil {
			return fmt.Errorf("start adapter %q: %w", a.Name(), err)
		}
		logger.InfoC("robot", "adapter started: "+a.Name())
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-r.bus.Inbound():
			r.receive(in)
		}
	}
}

func (r *Robot) receive(in bus.InboundMessage) {
	msg := respond.NewMessage(in.Adapter, in.ChatID, in.SenderName, in.Content)
	msg.Robot = r
	msg.Metadata = in.Metadata

	entries := r.Entries()
	logger.DebugCF("robot", "dispatching message", map[string]interface{}{
		"adapter": in.Adapter,
		"chat":    in.ChatID,
		"entries": len(entries),
	})
	respond.Dispatch(msg, entries)
}

// Send delivers text to the room the message came from.
func (r *Robot) Send(msg *respond.Message, text string) error {
	return r.bus.PublishOutbound(bus.OutboundMessage{
		Adapter: msg.Adapter,
		ChatID:  msg.Room,
		Content: text,
	})
}

// Reply prefixes the sender's name so the reply reads as addressed.
func (r *Robot) Reply(msg *respond.Message, text string) error {
	if msg.User != "" {
		text = msg.User + ": " + text
	}
	return r.Send(msg, text)
}

// Emote sends text flagged as an action; adapters without action support
// fall back to plain text.
func (r *Robot) Emote(msg *respond.Message, text string) error {
	return r.bus.PublishOutbound(bus.OutboundMessage{
		Adapter: msg.Adapter,
		ChatID:  msg.Room,
		Content: text,
		Emote:   true,
	})
}
