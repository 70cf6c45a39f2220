package respond

import (
	"errors"

	"github.com/google/uuid"

	"github.com/hedwigbot/hedwig/pkg/match"
)

// Options is the opaque key-value bag attached to an installed handler
// group, passed through to handlers unchanged.
type Options map[string]any

func (o Options) clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Sender delivers outgoing text on behalf of a handler. The robot host
// implements it; the matching core itself never sends.
type Sender interface {
	Send(msg *Message, text string) error
	Reply(msg *Message, text string) error
	Emote(msg *Message, text string) error
}

var errNoSender = errors.New("message has no sender attached")

// Message is one inbound chat message moving through dispatch. Text is
// immutable; Matches is populated on a per-handler copy just before
// invocation, never on the original.
type Message struct {
	ID       string
	Adapter  string
	Room     string
	User     string
	Text     string
	Matches  match.Captures
	Robot    Sender
	Metadata map[string]string
}

// NewMessage builds a message for one inbound event.
func NewMessage(adapter, room, user, text string) *Message {
	return &Message{
		ID:      uuid.NewString(),
		Adapter: adapter,
		Room:    room,
		User:    user,
		Text:    text,
	}
}

// withMatches returns a shallow copy carrying the given captures, so
// concurrent dispatch units never share the mutable Matches field.
func (m *Message) withMatches(caps match.Captures) *Message {
	dup := *m
	dup.Matches = caps
	return &dup
}

// Send delivers text to the room the message came from.
func (m *Message) Send(text string) error {
	if m.Robot == nil {
		return errNoSender
	}
	return m.Robot.Send(m, text)
}

// Reply delivers text addressed back to the message's sender.
func (m *Message) Reply(text string) error {
	if m.Robot == nil {
		return errNoSender
	}
	return m.Robot.Reply(m, text)
}

// Emote delivers text as an action ("* bot does something") where the
// adapter supports it.
func (m *Message) Emote(text string) error {
	if m.Robot == nil {
		return errNoSender
	}
	return m.Robot.Emote(m, text)
}
