package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer     string        // Issuer claim for session tokens (default: lodgekeep-backoffice)
	SessionTTL time.Duration // Session token lifetime (default: 1h)

	DatabaseFile string // Path to SQLite database file (default: ./backoffice.db)

	// BootstrapUsername and BootstrapPassword seed the first ADMIN account
	// when the accounts table is empty. Both optional; nothing is seeded
	// unless both are set.
	BootstrapUsername string
	BootstrapPassword string
	BootstrapEmail    string

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// A .env file is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	return Config{
		Issuer:              getEnvOrDefault("ADMIN_ISSUER", "lodgekeep-backoffice"),
		SessionTTL:          getEnvDurationOrDefault("ADMIN_SESSION_TTL", time.Hour),
		DatabaseFile:        getEnvOrDefault("ADMIN_DATABASE_FILE", "backoffice.db"),
		BootstrapUsername:   os.Getenv("ADMIN_BOOTSTRAP_USERNAME"),
		BootstrapPassword:   os.Getenv("ADMIN_BOOTSTRAP_PASSWORD"),
		BootstrapEmail:      getEnvOrDefault("ADMIN_BOOTSTRAP_EMAIL", "admin@localhost"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
