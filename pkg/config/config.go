package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Pool sizing
	DBMinConns int32
	DBMaxConns int32

	// Movement engine retry policy for transient database failures
	TxnMaxRetries   int
	TxnRetryBackoff time.Duration

	// Per-request deadline applied by the HTTP layer
	RequestTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_MIN_CONNS", 10)
	viper.SetDefault("DB_MAX_CONNS", 30)
	viper.SetDefault("TXN_MAX_RETRIES", 3)
	viper.SetDefault("TXN_RETRY_BACKOFF", "50ms")
	viper.SetDefault("REQUEST_TIMEOUT", "5s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DBMinConns = viper.GetInt32("DB_MIN_CONNS")
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	if cfg.DBMaxConns < cfg.DBMinConns {
		log.Printf("Warning: DB_MAX_CONNS (%d) below DB_MIN_CONNS (%d). Raising to match.\n", cfg.DBMaxConns, cfg.DBMinConns)
		cfg.DBMaxConns = cfg.DBMinConns
	}

	cfg.TxnMaxRetries = viper.GetInt("TXN_MAX_RETRIES")
	if cfg.TxnMaxRetries <= 0 {
		cfg.TxnMaxRetries = 3
		log.Printf("Warning: Invalid value for TXN_MAX_RETRIES. Defaulting to %d.\n", cfg.TxnMaxRetries)
	}

	backoffStr := viper.GetString("TXN_RETRY_BACKOFF")
	backoff, err := time.ParseDuration(backoffStr)
	if err != nil || backoff <= 0 {
		backoff = 50 * time.Millisecond
		log.Printf("Warning: Invalid value for TXN_RETRY_BACKOFF ('%s'). Defaulting to %s.\n", backoffStr, backoff)
	}
	cfg.TxnRetryBackoff = backoff

	timeoutStr := viper.GetString("REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RequestTimeout = timeout

	return cfg, nil
}
