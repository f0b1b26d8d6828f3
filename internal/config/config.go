package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Session  SessionConfig  `koanf:"session"`
	Google   GoogleConfig   `koanf:"google"`
	Stripe   StripeConfig   `koanf:"stripe"`
	Database DatabaseConfig `koanf:"database"`
	Logger   LoggerConfig   `koanf:"logger"`
	Worker   WorkerConfig   `koanf:"worker"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type SessionConfig struct {
	CookieName string        `koanf:"cookie_name" validate:"required"`
	TTL        time.Duration `koanf:"ttl" validate:"required"`
	// Secure toggles the cookie Secure flag; off by default for local
	// development over plain HTTP.
	Secure bool `koanf:"secure"`
}

// GoogleConfig carries the identity provider credentials. ClientID and
// ClientSecret are optional: when either is empty the login flow runs in
// degraded NotConfigured mode instead of failing startup.
type GoogleConfig struct {
	ClientID     string        `koanf:"client_id"`
	ClientSecret string        `koanf:"client_secret"`
	RedirectURL  string        `koanf:"redirect_url"`
	ConnTimeout  time.Duration `koanf:"conn_timeout"`

	// Test-only endpoint overrides.
	AuthURL     string `koanf:"auth_url"`
	TokenURL    string `koanf:"token_url"`
	UserInfoURL string `koanf:"user_info_url"`
}

func (c GoogleConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// StripeConfig carries the processor credentials. SecretKey and
// PublishableKey are optional; payments degrade to NotConfigured when
// absent. WebhookSecret authenticates inbound processor callbacks.
type StripeConfig struct {
	SecretKey      string        `koanf:"secret_key"`
	PublishableKey string        `koanf:"publishable_key"`
	WebhookSecret  string        `koanf:"webhook_secret"`
	BaseURL        string        `koanf:"base_url"`
	ConnTimeout    time.Duration `koanf:"conn_timeout"`
}

func (c StripeConfig) Configured() bool {
	return c.SecretKey != ""
}

// DatabaseConfig selects the Postgres session store when URL is set;
// otherwise sessions stay in memory.
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxConns        int           `koanf:"max_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

type WorkerConfig struct {
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"required"`
}

func defaults() map[string]any {
	return map[string]any{
		"primary.env":                "development",
		"server.port":                "3000",
		"server.read_timeout":        "15s",
		"server.write_timeout":       "15s",
		"server.idle_timeout":        "60s",
		"session.cookie_name":        "checkout_session",
		"session.ttl":                "24h",
		"google.redirect_url":        "http://localhost:3000/auth/callback",
		"google.conn_timeout":        "10s",
		"stripe.conn_timeout":        "20s",
		"database.max_conns":         10,
		"database.conn_max_lifetime": "30m",
		"logger.level":               "info",
		"worker.sweep_interval":      "10m",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("CHECKOUT_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CHECKOUT_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
