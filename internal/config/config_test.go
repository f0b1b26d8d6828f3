package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "checkout_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Worker.SweepInterval)
	assert.Equal(t, "info", cfg.Logger.Level)

	assert.False(t, cfg.Google.Configured())
	assert.False(t, cfg.Stripe.Configured())
	assert.Empty(t, cfg.Database.URL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CHECKOUT_SERVER__PORT", "8080")
	t.Setenv("CHECKOUT_SESSION__TTL", "1h")
	t.Setenv("CHECKOUT_GOOGLE__CLIENT_ID", "client-id")
	t.Setenv("CHECKOUT_GOOGLE__CLIENT_SECRET", "client-secret")
	t.Setenv("CHECKOUT_STRIPE__SECRET_KEY", "sk_test_1")
	t.Setenv("CHECKOUT_STRIPE__PUBLISHABLE_KEY", "pk_test_1")
	t.Setenv("CHECKOUT_DATABASE__URL", "postgres://localhost:5432/checkout")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Google.Configured())
	assert.Equal(t, "client-id", cfg.Google.ClientID)
	assert.True(t, cfg.Stripe.Configured())
	assert.Equal(t, "pk_test_1", cfg.Stripe.PublishableKey)
	assert.Equal(t, "postgres://localhost:5432/checkout", cfg.Database.URL)
}

func TestGoogleConfig_Configured(t *testing.T) {
	assert.False(t, GoogleConfig{ClientID: "id"}.Configured())
	assert.False(t, GoogleConfig{ClientSecret: "secret"}.Configured())
	assert.True(t, GoogleConfig{ClientID: "id", ClientSecret: "secret"}.Configured())
}

func TestLoggerConfig_BadLevelFallsBack(t *testing.T) {
	logger := LoggerConfig{Level: "chatty"}.NewLogger()
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
