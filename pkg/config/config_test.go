package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("RATE_LIMIT_PER_MINUTE")
	os.Unsetenv("NOTIFY_MODE")
	os.Unsetenv("WEBHOOK_URL")
	os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, 30, cfg.RateLimit.PerWindow)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, NotifyModeConsole, cfg.Notify.Mode)
	assert.Equal(t, 5*time.Second, cfg.Notify.Timeout)
	assert.Empty(t, cfg.Notify.WebhookURL)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_RateLimitFloor(t *testing.T) {
	os.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	defer os.Unsetenv("RATE_LIMIT_PER_MINUTE")

	cfg, err := Load()
	assert.NoError(t, err)

	// Non-positive values are clamped to the floor
	assert.Equal(t, 1, cfg.RateLimit.PerWindow)
}

func TestLoad_NotifyConfig(t *testing.T) {
	os.Setenv("NOTIFY_MODE", "WEBHOOK")
	os.Setenv("WEBHOOK_URL", "https://hooks.example.com/feedback")
	defer func() {
		os.Unsetenv("NOTIFY_MODE")
		os.Unsetenv("WEBHOOK_URL")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, NotifyModeWebhook, cfg.Notify.Mode)
	assert.Equal(t, "https://hooks.example.com/feedback", cfg.Notify.WebhookURL)
}

func TestLoad_InvalidNotifyMode(t *testing.T) {
	os.Setenv("NOTIFY_MODE", "carrier-pigeon")
	defer os.Unsetenv("NOTIFY_MODE")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	os.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com ,")
	defer os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}
