package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/bizledger/internal/core/ledger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	// AdminIdentity is the caller identity allowed to pause the ledger.
	AdminIdentity string

	// Ledger limits
	LowBalanceThreshold   uint64
	OverspendingThreshold uint64
	MaxTransactionAmount  uint64
	HistoryDefaultLimit   int

	RateLimit          string   // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string // empty means allow all origins

	// Notification sinks
	PosthogAPIKey      string
	PosthogEndpoint    string
	RedisURL           string
	RedisEventsChannel string
	NotifyBuffer       int

	ShutdownTimeout time.Duration
}

// Limits returns the ledger limits described by the config.
func (c *Config) Limits() ledger.Limits {
	return ledger.Limits{
		MaxAmount:             c.MaxTransactionAmount,
		LowBalanceThreshold:   c.LowBalanceThreshold,
		OverspendingThreshold: c.OverspendingThreshold,
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

// defaultJWTSecret is only acceptable outside production.
const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "bizledger")
	v.SetDefault("ADMIN_IDENTITY", "")
	v.SetDefault("LOW_BALANCE_THRESHOLD", 100)
	v.SetDefault("OVERSPENDING_THRESHOLD", 1000)
	v.SetDefault("MAX_TRANSACTION_AMOUNT", ledger.DefaultMaxAmount)
	v.SetDefault("HISTORY_DEFAULT_LIMIT", 20)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_EVENTS_CHANNEL", "bizledger.events")
	v.SetDefault("NOTIFY_BUFFER", 256)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

func loadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	// an explicitly empty variable must not fall back to its default
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:           v.GetString("PGSQL_URL"),
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:         v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		AdminIdentity:         v.GetString("ADMIN_IDENTITY"),
		LowBalanceThreshold:   v.GetUint64("LOW_BALANCE_THRESHOLD"),
		OverspendingThreshold: v.GetUint64("OVERSPENDING_THRESHOLD"),
		MaxTransactionAmount:  v.GetUint64("MAX_TRANSACTION_AMOUNT"),
		HistoryDefaultLimit:   v.GetInt("HISTORY_DEFAULT_LIMIT"),
		RateLimit:             v.GetString("RATE_LIMIT"),
		PosthogAPIKey:         v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:       v.GetString("POSTHOG_ENDPOINT"),
		RedisURL:              v.GetString("REDIS_URL"),
		RedisEventsChannel:    v.GetString("REDIS_EVENTS_CHANNEL"),
		NotifyBuffer:          v.GetInt("NOTIFY_BUFFER"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Ledger state will not survive restarts.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET not set. Using the built-in development secret.")
	}
	if cfg.AdminIdentity == "" {
		log.Println("Warning: ADMIN_IDENTITY not set. Admin pause will reject every caller.")
	}
	if cfg.MaxTransactionAmount == 0 || cfg.MaxTransactionAmount > ledger.DefaultMaxAmount {
		log.Printf("Warning: MAX_TRANSACTION_AMOUNT out of range. Defaulting to %d.\n", ledger.DefaultMaxAmount)
		cfg.MaxTransactionAmount = ledger.DefaultMaxAmount
	}
	if cfg.HistoryDefaultLimit <= 0 {
		cfg.HistoryDefaultLimit = 20
	}
	if cfg.RedisEventsChannel == "" {
		cfg.RedisEventsChannel = "bizledger.events"
	}
	if cfg.NotifyBuffer <= 0 {
		cfg.NotifyBuffer = 256
	}

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	return cfg, nil
}
