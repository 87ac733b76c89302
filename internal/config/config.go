package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nanakim-star/trc20bot/internal/models"
)

const (
	// USDTContractAddress is the USDT TRC20 token contract on Tron mainnet.
	USDTContractAddress = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	// DefaultTelegramAPIURL is the public Telegram Bot API endpoint.
	DefaultTelegramAPIURL = "https://api.telegram.org"
)

type Config struct {
	Development bool
	// API configuration
	APIPort int
	// Database configuration
	DatabaseURL    string
	DBMaxOpenConns int

	// Auth configuration
	JWTSecretKey  string
	TokenTTL      time.Duration
	SetupKey      string
	AdminUsername string
	AdminPassword string

	// Webhook configuration
	MonitoredContractAddress string
	AssetSymbol              string

	// Notification configuration
	NotificationTimeout time.Duration
	TelegramAPIURL      string
}

// LoadConfig loads the configuration from environment variables. It does not
// validate; callers apply their overrides first and then call Validate.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Development:              getEnvAsBool("DEVELOPMENT", false),
		APIPort:                  getEnvAsInt("PORT", 8080),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		DBMaxOpenConns:           getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		JWTSecretKey:             getEnv("JWT_SECRET_KEY", ""),
		TokenTTL:                 getEnvAsDuration("TOKEN_TTL", time.Hour),
		SetupKey:                 getEnv("SETUP_KEY", ""),
		AdminUsername:            getEnv("ADMIN_USERNAME", ""),
		AdminPassword:            getEnv("ADMIN_PASSWORD", ""),
		MonitoredContractAddress: getEnv("MONITORED_CONTRACT_ADDRESS", USDTContractAddress),
		NotificationTimeout:      getEnvAsDuration("NOTIFICATION_TIMEOUT", 15*time.Second),
		TelegramAPIURL:           getEnv("TELEGRAM_API_URL", DefaultTelegramAPIURL),
	}

	cfg.AssetSymbol = getEnv("ASSET_SYMBOL", defaultAssetSymbol(cfg.MonitoredContractAddress))

	return cfg, nil
}

// Validate checks that all required configuration fields are properly set
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL is required", models.ErrConfig)
	}

	if c.JWTSecretKey == "" {
		return fmt.Errorf("%w: JWT_SECRET_KEY is required", models.ErrConfig)
	}

	if c.MonitoredContractAddress == "" {
		return fmt.Errorf("%w: MONITORED_CONTRACT_ADDRESS is required", models.ErrConfig)
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("%w: TOKEN_TTL must be positive", models.ErrConfig)
	}

	if c.NotificationTimeout <= 0 {
		return fmt.Errorf("%w: NOTIFICATION_TIMEOUT must be positive", models.ErrConfig)
	}

	return nil
}

// Helper functions to read environment variables
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
