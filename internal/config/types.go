package config

import "github.com/CosmoTheDev/gdnotify/models"

// Config is the process-wide configuration, read once at startup.
// It is passed by value and never mutated afterwards.
type Config struct {
	// WebhookURL is the Slack incoming webhook. Delivery fails when empty.
	WebhookURL string `mapstructure:"webhook_url" json:"webhook_url" yaml:"webhook_url"`
	// Channel overrides the webhook's default channel.
	Channel string `mapstructure:"channel"     json:"channel"     yaml:"channel"`
	// MinSeverity is LOW, MEDIUM, HIGH or empty. Only Medium findings are gated by it.
	MinSeverity string `mapstructure:"min_severity" json:"min_severity" yaml:"min_severity"`
	Username    string `mapstructure:"username"     json:"username"     yaml:"username"`
	IconURL     string `mapstructure:"icon_url"     json:"icon_url"     yaml:"icon_url"`
	// ConsoleURL is the GuardDuty console base used for finding links.
	ConsoleURL string    `mapstructure:"console_url" json:"console_url" yaml:"console_url"`
	Log        LogConfig `mapstructure:"log"         json:"log"         yaml:"log"`
}

// LogConfig controls the slog handler installed by the binary.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `mapstructure:"level"  json:"level"  yaml:"level"`
	// Format is "json" (default) or "text".
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// MinSeverityLevel returns the parsed minimum severity.
func (c Config) MinSeverityLevel() models.SeverityLevel {
	return models.ParseSeverityLevel(c.MinSeverity)
}
