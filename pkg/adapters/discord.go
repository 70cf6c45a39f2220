package adapters

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/hedwigbot/hedwig/pkg/bus"
	"github.com/hedwigbot/hedwig/pkg/config"
	"github.com/hedwigbot/hedwig/pkg/logger"
)

// DiscordAdapter receives messages over the Discord gateway.
type DiscordAdapter struct {
	*BaseAdapter
	session *discordgo.Session
	config  config.DiscordConfig
}

func NewDiscordAdapter(cfg config.DiscordConfig, b *bus.MessageBus) (*DiscordAdapter, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("discord token not configured")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return &DiscordAdapter{
		BaseAdapter: NewBaseAdapter("discord", b, cfg.AllowFrom),
		session:     session,
		config:      cfg,
	}, nil
}

func (a *DiscordAdapter) Start(ctx context.Context) error {
	logger.InfoC("discord", "Starting Discord adapter (gateway mode)")

	a.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		if s.State.User != nil && m.Author.ID == s.State.User.ID {
			return
		}
		if !a.allowed(m.Author.ID) {
			logger.DebugC("discord", "sender not in allow_from, dropping: "+m.Author.ID)
			return
		}
		a.publishInbound(m.Author.ID, m.Author.Username, m.ChannelID, m.Content)
	})

	if err := a.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	a.setRunning(true)

	go a.playOutbound(ctx)

	go func() {
		<-ctx.Done()
		a.session.Close()
		a.setRunning(false)
	}()

	return nil
}

func (a *DiscordAdapter) playOutbound(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case out := <-a.outbound():
			content := out.Content
			if out.Emote {
				content = "*" + content + "*"
			}
			if _, err := a.session.ChannelMessageSend(out.ChatID, content); err != nil {
				logger.ErrorCF("discord", "failed to send message", map[string]interface{}{
					"chat":  out.ChatID,
					"error": err.Error(),
				})
			}
		}
	}
}
