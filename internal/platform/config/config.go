package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool
	RunMigrations bool
	// SeedCurrencies ensures the default reference currencies exist at boot.
	SeedCurrencies bool

	CoinDesk CoinDeskConfig

	RateLimit          string
	CORSAllowedOrigins []string
	LogLevel           slog.Level
	ShutdownTimeout    time.Duration
}

// CoinDeskConfig configures the upstream price index client.
type CoinDeskConfig struct {
	URL            string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	UserAgent      string
}

const (
	defaultCoinDeskURL     = "https://api.coindesk.com/v1/bpi/currentprice.json"
	defaultConnectTimeout  = 5 * time.Second
	defaultReadTimeout     = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("SEED_CURRENCIES", true)
	v.SetDefault("COINDESK_URL", defaultCoinDeskURL)
	v.SetDefault("COINDESK_CONNECT_TIMEOUT", defaultConnectTimeout.String())
	v.SetDefault("COINDESK_READ_TIMEOUT", defaultReadTimeout.String())
	v.SetDefault("COINDESK_USER_AGENT", "bitcoin-price-app/1.0")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:           strings.TrimSpace(v.GetString("PORT")),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		DatabaseURL:    strings.TrimSpace(v.GetString("PGSQL_URL")),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:  v.GetBool("RUN_MIGRATIONS"),
		SeedCurrencies: v.GetBool("SEED_CURRENCIES"),
		CoinDesk: CoinDeskConfig{
			URL:            strings.TrimSpace(v.GetString("COINDESK_URL")),
			ConnectTimeout: durationOrDefault(v, "COINDESK_CONNECT_TIMEOUT", defaultConnectTimeout),
			ReadTimeout:    durationOrDefault(v, "COINDESK_READ_TIMEOUT", defaultReadTimeout),
			UserAgent:      v.GetString("COINDESK_USER_AGENT"),
		},
		RateLimit:          strings.TrimSpace(v.GetString("RATE_LIMIT")),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout:    durationOrDefault(v, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, defaulting", slog.String("port", cfg.Port))
	}
	if cfg.CoinDesk.URL == "" {
		cfg.CoinDesk.URL = defaultCoinDeskURL
	}
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL not set, reference currencies are kept in memory")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v.GetString("LOG_LEVEL")))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	return cfg, nil
}

// durationOrDefault parses key as a positive duration, falling back to def
// with a warning when the value is missing or invalid.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("Invalid duration, using default", slog.String("key", key), slog.String("value", raw), slog.Duration("default", def))
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.CORSAllowedOrigins) == 0
}
