package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv        string
	EncryptionKey string

	// Storage
	Store      string
	SQLitePath string

	// Database
	DatabaseURL string

	// Redis
	RedisURL       string
	RedisNamespace string

	// RabbitMQ
	RabbitMQURL   string
	EventExchange string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		EncryptionKey: getEnv("FITSMART_ENCRYPTION_KEY", ""),

		Store:      strings.ToLower(getEnv("FITSMART_STORE", StoreSQLite)),
		SQLitePath: getEnv("FITSMART_SQLITE_PATH", defaultSQLitePath()),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisNamespace: getEnv("FITSMART_REDIS_NAMESPACE", ""),

		RabbitMQURL:   getEnv("RABBITMQ_URL", ""),
		EventExchange: getEnv("FITSMART_EVENT_EXCHANGE", "fitsmart.domain.events"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combination of settings.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreMemory, StoreRedis:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("FITSMART_STORE=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown FITSMART_STORE %q (want sqlite, postgres, redis or memory)", c.Store)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// PublishesToBroker reports whether events go to RabbitMQ.
func (c *Config) PublishesToBroker() bool {
	return c.RabbitMQURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".fitsmart", "data.db")
	}
	return filepath.Join(home, ".fitsmart", "data.db")
}
