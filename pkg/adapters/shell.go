package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hedwigbot/hedwig/pkg/bus"
	"github.com/hedwigbot/hedwig/pkg/logger"
)

// ShellAdapter is an interactive console transport for local use and
// development. Every line typed becomes one inbound message.
type ShellAdapter struct {
	*BaseAdapter
	botName string
}

func NewShellAdapter(botName string, b *bus.MessageBus) *ShellAdapter {
	return &ShellAdapter{
		BaseAdapter: NewBaseAdapter("shell", b, nil),
		botName:     botName,
	}
}

func (a *ShellAdapter) Start(ctx context.Context) error {
	rl, err := readline.New(a.botName + "> ")
	if err != nil {
		return fmt.Errorf("failed to init readline: %w", err)
	}

	a.setRunning(true)

	go a.playOutbound(ctx, rl)

	go func() {
		defer rl.Close()
		defer a.setRunning(false)
		for {
			line, err := rl.Readline()
			if err != nil {
				if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
					return
				}
				logger.ErrorC("shell", "read failed: "+err.Error())
				return
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			select {
			case <-ctx.Done():
				return
			default:
				a.publishInbound("local", "you", "shell", line)
			}
		}
	}()

	return nil
}

func (a *ShellAdapter) playOutbound(ctx context.Context, rl *readline.Instance) {
	for {
		select {
		case <-ctx.Done():
			return
		case out := <-a.outbound():
			if out.Emote {
				fmt.Fprintf(rl.Stdout(), "* %s %s\n", a.botName, out.Content)
			} else {
				fmt.Fprintf(rl.Stdout(), "%s\n", out.Content)
			}
		}
	}
}
