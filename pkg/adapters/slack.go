package adapters

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/hedwigbot/hedwig/pkg/bus"
	"github.com/hedwigbot/hedwig/pkg/config"
	"github.com/hedwigbot/hedwig/pkg/logger"
)

// SlackAdapter connects over Socket Mode, so no public ingress is needed.
type SlackAdapter struct {
	*BaseAdapter
	config config.SlackConfig
	api    *slack.Client
	client *socketmode.Client
}

func NewSlackAdapter(cfg config.SlackConfig, b *bus.MessageBus) (*SlackAdapter, error) {
	if cfg.BotToken == "" || cfg.AppToken == "" {
		return nil, fmt.Errorf("slack bot_token and app_token not configured")
	}

	api := slack.New(cfg.BotToken, slack.OptionAppLevelToken(cfg.AppToken))
	return &SlackAdapter{
		BaseAdapter: NewBaseAdapter("slack", b, cfg.AllowFrom),
		config:      cfg,
		api:         api,
		client:      socketmode.New(api),
	}, nil
}

func (a *SlackAdapter) Start(ctx context.Context) error {
	logger.InfoC("slack", "Starting Slack adapter (socket mode)")
	a.setRunning(true)

	go a.playOutbound(ctx)
	go a.consumeEvents(ctx)

	go func() {
		defer a.setRunning(false)
		if err := a.client.RunContext(ctx); err != nil && ctx.Err() == nil {
			logger.ErrorC("slack", "socket mode stopped: "+err.Error())
		}
	}()

	return nil
}

func (a *SlackAdapter) consumeEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-a.client.Events:
			if !ok {
				return
			}
			if evt.Type != socketmode.EventTypeEventsAPI {
				continue
			}
			apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
			if !ok {
				continue
			}
			if evt.Request != nil {
				a.client.Ack(*evt.Request)
			}
			a.handleCallback(apiEvent)
		}
	}
}

func (a *SlackAdapter) handleCallback(apiEvent slackevents.EventsAPIEvent) {
	if apiEvent.Type != slackevents.CallbackEvent {
		return
	}
	ev, ok := apiEvent.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		return
	}
	// Ignore bot echoes and edits; only fresh user messages dispatch.
	if ev.BotID != "" || ev.SubType != "" {
		return
	}
	if !a.allowed(ev.User) {
		logger.DebugC("slack", "sender not in allow_from, dropping: "+ev.User)
		return
	}
	a.publishInbound(ev.User, "<@"+ev.User+">", ev.Channel, ev.Text)
}

func (a *SlackAdapter) playOutbound(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case out := <-a.outbound():
			content := out.Content
			if out.Emote {
				content = "_" + content + "_"
			}
			_, _, err := a.api.PostMessageContext(ctx, out.ChatID, slack.MsgOptionText(content, false))
			if err != nil {
				logger.ErrorCF("slack", "failed to send message", map[string]interface{}{
					"chat":  out.ChatID,
					"error": err.Error(),
				})
			}
		}
	}
}
