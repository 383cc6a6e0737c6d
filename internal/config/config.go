// Package config loads the optional YAML configuration file and applies the
// environment overrides the bot recognizes.
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "KLASSENBOTE_CONFIG"
	classEnv          = "KLASSENBOTE_CLASS"
	timeOfDayEnv      = "KLASSENBOTE_TIME"
	sendEnv           = "SEND_MESSAGE"
	portalUserEnv     = "SCHULPORTAL_USERNAME"
	portalPassEnv     = "SCHULPORTAL_PASSWORD"
	portalExportEnv   = "SCHULPORTAL_EXPORT"
	portalPlanEnv     = "SCHULPORTAL_VERTRETUNG"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds the settings shared across the commands.
type Config struct {
	Class     string         `yaml:"class"`
	TimeOfDay string         `yaml:"timeOfDay"`
	Send      bool           `yaml:"send"`
	Portal    PortalConfig   `yaml:"portal"`
	Telegram  TelegramConfig `yaml:"telegram"`
	Mastodon  MastodonConfig `yaml:"mastodon"`
}

// PortalConfig points at the two Schulportal feeds; either can be a URL or a
// local file path.
type PortalConfig struct {
	Export     string `yaml:"export"`
	Vertretung string `yaml:"vertretung"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
}

// TelegramConfig wires the data required to reach the class group chat.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// MastodonConfig names the instance whose stored credentials to use.
type MastodonConfig struct {
	Instance string `yaml:"instance"`
}

// Load reads the YAML file named by KLASSENBOTE_CONFIG (if any) and applies
// environment overrides on top of the defaults.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(classEnv); v != "" {
		c.Class = v
	}
	if v := os.Getenv(timeOfDayEnv); v != "" {
		c.TimeOfDay = v
	}
	if v := os.Getenv(sendEnv); v != "" {
		c.Send = v == "true" || v == "1"
	}
	if v := os.Getenv(portalUserEnv); v != "" {
		c.Portal.Username = v
	}
	if v := os.Getenv(portalPassEnv); v != "" {
		c.Portal.Password = v
	}
	if v := os.Getenv(portalExportEnv); v != "" {
		c.Portal.Export = v
	}
	if v := os.Getenv(portalPlanEnv); v != "" {
		c.Portal.Vertretung = v
	}
	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Telegram.ChatID = v
	}
}

func defaultConfig() Config {
	return Config{
		Class:     "10HBFI",
		TimeOfDay: "morgen",
	}
}
