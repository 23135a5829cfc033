package app

import (
	"os"
	"strconv"
	"time"

	"github.com/taskflowhq/taskflow/pkg/jwtx"
)

type Config struct {
	Issuer         string        // Required: issuer claim for tokens
	DatabaseFile   string        // Optional: path to SQLite database file (default: ./taskflow.db)
	PepperFile     string        // Optional: path to pepper file for password hashing (default: ./pepper)
	SigningKeyFile string        // Optional: path to Ed25519 signing key file (default: ./signing.key)
	SessionTTL     time.Duration // Optional: session token lifetime (default: 24h)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:         getEnvOrDefault("TASKFLOW_ISSUER", "taskflow"),
		DatabaseFile:   getEnvOrDefault("TASKFLOW_DATABASE_FILE", "taskflow.db"),
		PepperFile:     getEnvOrDefault("TASKFLOW_PEPPER_FILE", "pepper"),
		SigningKeyFile: getEnvOrDefault("TASKFLOW_SIGNING_KEY_FILE", "signing.key"),
		SessionTTL:     getEnvDurationOrDefault("TASKFLOW_SESSION_TTL", jwtx.DefaultSessionTTL),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
