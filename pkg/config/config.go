package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// DefaultExchangeRate is the policy fallback applied when a money value
	// carries no usable rate snapshot and no current rate can be resolved.
	// It is a configured value, not a system constant.
	DefaultExchangeRate decimal.Decimal

	// RateResolveTimeout bounds every exchange-rate lookup so a slow rate
	// source can never block a settlement or render.
	RateResolveTimeout time.Duration

	// RateLimit is the request limit in ulule/limiter format, e.g. "100-M".
	RateLimit string

	// AllowedOrigins configures CORS for the front-office UI.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if
// present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DEFAULT_EXCHANGE_RATE", "0")
	viper.SetDefault("RATE_RESOLVE_TIMEOUT", "2s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	defaultRateStr := viper.GetString("DEFAULT_EXCHANGE_RATE")
	defaultRate, err := decimal.NewFromString(defaultRateStr)
	if err != nil {
		defaultRate = decimal.Zero
		log.Printf("Warning: Invalid value for DEFAULT_EXCHANGE_RATE ('%s'). Defaulting to 0.\n", defaultRateStr)
	}
	cfg.DefaultExchangeRate = defaultRate
	if cfg.DefaultExchangeRate.LessThanOrEqual(decimal.Zero) {
		log.Println("Warning: DEFAULT_EXCHANGE_RATE not set. Dollar amounts without a rate snapshot will contribute zero until a current rate is available.")
	}

	resolveTimeoutStr := viper.GetString("RATE_RESOLVE_TIMEOUT")
	resolveTimeout, err := time.ParseDuration(resolveTimeoutStr)
	if err != nil {
		resolveTimeout = 2 * time.Second
		log.Printf("Warning: Invalid value for RATE_RESOLVE_TIMEOUT ('%s'). Defaulting to %s.\n", resolveTimeoutStr, resolveTimeout)
	}
	cfg.RateResolveTimeout = resolveTimeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	return cfg, nil
}
