package adapters

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/hedwigbot/hedwig/pkg/bus"
	"github.com/hedwigbot/hedwig/pkg/config"
	"github.com/hedwigbot/hedwig/pkg/logger"
)

// TelegramAdapter receives updates over long polling.
type TelegramAdapter struct {
	*BaseAdapter
	bot    *telego.Bot
	config config.TelegramConfig
}

func NewTelegramAdapter(cfg config.TelegramConfig, b *bus.MessageBus) (*TelegramAdapter, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram token not configured")
	}

	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TelegramAdapter{
		BaseAdapter: NewBaseAdapter("telegram", b, cfg.AllowFrom),
		bot:         bot,
		config:      cfg,
	}, nil
}

func (a *TelegramAdapter) Start(ctx context.Context) error {
	logger.InfoC("telegram", "Starting Telegram adapter (polling mode)")

	updates, err := a.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 30,
	})
	if err != nil {
		return fmt.Errorf("failed to start long polling: %w", err)
	}

	a.setRunning(true)

	go a.playOutbound(ctx)

	go func() {
		defer a.setRunning(false)
		for {
			select {
			case <-ctx.Done():
				return
			case update, ok := <-updates:
				if !ok {
					logger.InfoC("telegram", "Updates channel closed")
					return
				}
				if update.Message != nil {
					a.handleMessage(update.Message)
				}
			}
		}
	}()

	return nil
}

func (a *TelegramAdapter) handleMessage(msg *telego.Message) {
	if msg.From == nil || msg.Text == "" {
		return
	}

	senderID := strconv.FormatInt(msg.From.ID, 10)
	if !a.allowed(senderID) && !a.allowed(msg.From.Username) {
		logger.DebugC("telegram", "sender not in allow_from, dropping: "+senderID)
		return
	}

	senderName := msg.From.Username
	if senderName == "" {
		senderName = msg.From.FirstName
	}
	a.publishInbound(senderID, senderName, strconv.FormatInt(msg.Chat.ID, 10), msg.Text)
}

func (a *TelegramAdapter) playOutbound(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case out := <-a.outbound():
			chatID, err := strconv.ParseInt(out.ChatID, 10, 64)
			if err != nil {
				logger.ErrorC("telegram", "bad chat id: "+out.ChatID)
				continue
			}
			content := out.Content
			if out.Emote {
				content = "* " + content
			}
			if _, err := a.bot.SendMessage(ctx, tu.Message(tu.ID(chatID), content)); err != nil {
				logger.ErrorCF("telegram", "failed to send message", map[string]interface{}{
					"chat":  out.ChatID,
					"error": err.Error(),
				})
			}
		}
	}
}
