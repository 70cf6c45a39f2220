package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hedwigbot/hedwig/pkg/adapters"
	"github.com/hedwigbot/hedwig/pkg/bus"
	"github.com/hedwigbot/hedwig/pkg/config"
	"github.com/hedwigbot/hedwig/pkg/logger"
	"github.com/hedwigbot/hedwig/pkg/respond"
	"github.com/hedwigbot/hedwig/pkg/responders"
	"github.com/hedwigbot/hedwig/pkg/robot"
)

func main() {
	configPath := flag.String("config", "hedwig.json", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("config: " + err.Error())
	}

	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	if cfg.Logging.File != "" {
		if err := logger.EnableFileLogging(cfg.Logging.File); err != nil {
			logger.Warn("file logging disabled: " + err.Error())
		}
	}

	b := bus.NewMessageBus()
	bot := robot.New(cfg, b)

	if err := attachAdapters(cfg, b, bot); err != nil {
		logger.Fatal(err.Error())
	}

	groups := []*respond.Responder{
		responders.Ping(),
		responders.Help(cfg.Bot.Name, bot.Usage),
	}
	if err := bot.Install(groups, nil); err != nil {
		logger.Fatal("install: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.InfoCF("main", "hedwig starting", map[string]interface{}{
		"name":  cfg.Bot.Name,
		"alias": cfg.Bot.Alias,
	})
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("run: " + err.Error())
	}
	logger.Info("hedwig stopped")
}

func attachAdapters(cfg *config.Config, b *bus.MessageBus, bot *robot.Robot) error {
	if cfg.Adapters.Shell.Enabled {
		bot.AddAdapter(adapters.NewShellAdapter(cfg.Bot.Name, b))
	}
	if cfg.Adapters.Slack.Enabled {
		a, err := adapters.NewSlackAdapter(cfg.Adapters.Slack, b)
		if err != nil {
			return err
		}
		bot.AddAdapter(a)
	}
	if cfg.Adapters.Telegram.Enabled {
		a, err := adapters.NewTelegramAdapter(cfg.Adapters.Telegram, b)
		if err != nil {
			return err
		}
		bot.AddAdapter(a)
	}
	if cfg.Adapters.Discord.Enabled {
		a, err := adapters.NewDiscordAdapter(cfg.Adapters.Discord, b)
		if err != nil {
			return err
		}
		bot.AddAdapter(a)
	}
	return nil
}
