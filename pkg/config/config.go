package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Bot      BotConfig      `json:"bot"`
	Adapters AdaptersConfig `json:"adapters"`
	Logging  LoggingConfig  `json:"logging"`
}

// BotConfig is the bot's addressing identity. Alias is optional and lets
// users address the bot by a second token (e.g. "/" or a nickname).
type BotConfig struct {
	Name  string `json:"name" env:"HEDWIG_BOT_NAME"`
	Alias string `json:"alias" env:"HEDWIG_BOT_ALIAS"`
}

type AdaptersConfig struct {
	Shell    ShellConfig    `json:"shell"`
	Slack    SlackConfig    `json:"slack"`
	Telegram TelegramConfig `json:"telegram"`
	Discord  DiscordConfig  `json:"discord"`
}

type ShellConfig struct {
	Enabled bool `json:"enabled" env:"HEDWIG_SHELL_ENABLED"`
}

type SlackConfig struct {
	Enabled   bool     `json:"enabled" env:"HEDWIG_SLACK_ENABLED"`
	BotToken  string   `json:"bot_token" env:"HEDWIG_SLACK_BOT_TOKEN"`
	AppToken  string   `json:"app_token" env:"HEDWIG_SLACK_APP_TOKEN"`
	AllowFrom []string `json:"allow_from"`
}

type TelegramConfig struct {
	Enabled   bool     `json:"enabled" env:"HEDWIG_TELEGRAM_ENABLED"`
	Token     string   `json:"token" env:"HEDWIG_TELEGRAM_TOKEN"`
	AllowFrom []string `json:"allow_from"`
}

type DiscordConfig struct {
	Enabled   bool     `json:"enabled" env:"HEDWIG_DISCORD_ENABLED"`
	Token     string   `json:"token" env:"HEDWIG_DISCORD_TOKEN"`
	AllowFrom []string `json:"allow_from"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"HEDWIG_LOG_LEVEL"`
	File  string `json:"file" env:"HEDWIG_LOG_FILE"`
}

// DefaultConfig returns a runnable configuration: shell adapter only,
// info-level console logging.
func DefaultConfig() *Config {
	return &Config{
		Bot: BotConfig{
			Name: "hedwig",
		},
		Adapters: AdaptersConfig{
			Shell: ShellConfig{Enabled: true},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads the JSON config file at path (if it exists) over the
// defaults, then applies environment variable overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if cfg.Bot.Name == "" {
		return nil, fmt.Errorf("bot name must not be empty")
	}
	return cfg, nil
}
