package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosmoTheDev/gdnotify/models"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("webHookUrl", "https://hooks.slack.com/services/T000/B000/XXXX")
	t.Setenv("slackChannel", "#security")
	t.Setenv("minSeverityLevel", "MEDIUM")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://hooks.slack.com/services/T000/B000/XXXX", cfg.WebhookURL)
	assert.Equal(t, "#security", cfg.Channel)
	assert.Equal(t, models.SeverityMedium, cfg.MinSeverityLevel())
	assert.Equal(t, DefaultUsername, cfg.Username)
	assert.Equal(t, DefaultIconURL, cfg.IconURL)
	assert.Equal(t, DefaultConsoleURL, cfg.ConsoleURL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadDefaultsWhenUnset(t *testing.T) {
	for _, names := range envBindings {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.WebhookURL)
	assert.Equal(t, models.SeverityUnset, cfg.MinSeverityLevel())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gdnotify.yaml")
	data := []byte("webhook_url: https://hooks.slack.com/services/file\nchannel: '#from-file'\nmin_severity: LOW\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("slackChannel", "#from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.slack.com/services/file", cfg.WebhookURL)
	assert.Equal(t, "#from-env", cfg.Channel)
	assert.Equal(t, models.SeverityLow, cfg.MinSeverityLevel())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRedacted(t *testing.T) {
	cfg := Config{WebhookURL: "https://hooks.slack.com/services/T000/B000/secret", Channel: "#sec"}
	red := Redacted(cfg)
	assert.Equal(t, "https://hooks.slack.com/***", red.WebhookURL)
	assert.Equal(t, "#sec", red.Channel)
	assert.Equal(t, "https://hooks.slack.com/services/T000/B000/secret", cfg.WebhookURL, "input config must be untouched")

	assert.Equal(t, "***", Redacted(Config{WebhookURL: "not a url"}).WebhookURL)
	assert.Empty(t, Redacted(Config{}).WebhookURL)
}
