package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

const (
	DefaultConfigName = "gdnotify"
	DefaultUsername   = "GuardDuty"
	DefaultIconURL    = "https://raw.githubusercontent.com/aws-samples/amazon-guardduty-to-slack/master/images/gd_logo.png"
	DefaultConsoleURL = "https://console.aws.amazon.com/guardduty"
)

// envBindings maps config keys to the environment variables that set them.
// The camelCase names are the ones existing deployments already use.
var envBindings = map[string][]string{
	"webhook_url":  {"webHookUrl", "GDNOTIFY_WEBHOOK_URL"},
	"channel":      {"slackChannel", "GDNOTIFY_CHANNEL"},
	"min_severity": {"minSeverityLevel", "GDNOTIFY_MIN_SEVERITY"},
	"username":     {"slackUsername", "GDNOTIFY_USERNAME"},
	"icon_url":     {"slackIconUrl", "GDNOTIFY_ICON_URL"},
	"console_url":  {"consoleUrl", "GDNOTIFY_CONSOLE_URL"},
	"log.level":    {"logLevel", "GDNOTIFY_LOG_LEVEL"},
	"log.format":   {"logFormat", "GDNOTIFY_LOG_FORMAT"},
}

// Load reads configuration from the environment and, when present, a
// config file. configPath overrides the default ./gdnotify.{json,yaml} lookup;
// a missing default file is not an error.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	setDefaults(v)
	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Config{}, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// ConfigPath returns the config file Load would read for override, or ""
// when configuration comes from the environment only.
func ConfigPath(override string) string {
	if override != "" {
		return override
	}
	v := viper.New()
	v.SetConfigName(DefaultConfigName)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// Redacted returns a copy of cfg safe to print. The webhook path is the
// credential, so only its scheme and host are kept.
func Redacted(cfg Config) Config {
	if cfg.WebhookURL == "" {
		return cfg
	}
	u, err := url.Parse(cfg.WebhookURL)
	if err != nil || u.Host == "" {
		cfg.WebhookURL = "***"
		return cfg
	}
	cfg.WebhookURL = u.Scheme + "://" + u.Host + "/***"
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("webhook_url", "")
	v.SetDefault("channel", "")
	v.SetDefault("min_severity", "")
	v.SetDefault("username", DefaultUsername)
	v.SetDefault("icon_url", DefaultIconURL)
	v.SetDefault("console_url", DefaultConsoleURL)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
