package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig_BotName verifies the default identity is set.
func TestDefaultConfig_BotName(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Bot.Name == "" {
		t.Error("Bot name should not be empty")
	}
}

// TestDefaultConfig_ShellEnabled verifies the shell adapter is on by
// default so a bare binary is usable.
func TestDefaultConfig_ShellEnabled(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Adapters.Shell.Enabled {
		t.Error("Shell adapter should be enabled by default")
	}
	if cfg.Adapters.Slack.Enabled || cfg.Adapters.Telegram.Enabled || cfg.Adapters.Discord.Enabled {
		t.Error("Network adapters should be disabled by default")
	}
}

// TestLoadConfig_MissingFile verifies a missing config file falls back to
// defaults instead of failing.
func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Bot.Name != "hedwig" {
		t.Errorf("Bot name = %q, want default", cfg.Bot.Name)
	}
}

// TestLoadConfig_FileOverridesDefaults verifies JSON values win over
// defaults.
func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hedwig.json")
	data := `{"bot": {"name": "hal", "alias": "hal9000"}, "logging": {"level": "debug"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Bot.Name != "hal" || cfg.Bot.Alias != "hal9000" {
		t.Errorf("identity = %q/%q", cfg.Bot.Name, cfg.Bot.Alias)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

// TestLoadConfig_EnvOverridesFile verifies environment variables win over
// the file.
func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hedwig.json")
	if err := os.WriteFile(path, []byte(`{"bot": {"name": "hal"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HEDWIG_BOT_NAME", "marvin")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Bot.Name != "marvin" {
		t.Errorf("Bot name = %q, want env override", cfg.Bot.Name)
	}
}

// TestLoadConfig_BadJSON verifies a malformed file is an error, not a
// silent fallback.
func TestLoadConfig_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hedwig.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

// TestLoadConfig_EmptyName verifies an explicitly empty bot name is
// rejected.
func TestLoadConfig_EmptyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hedwig.json")
	if err := os.WriteFile(path, []byte(`{"bot": {"name": ""}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for an empty bot name")
	}
}
