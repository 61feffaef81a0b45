package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the desk application configuration
type Config struct {
	// DataFile is the primary inventory file, rewritten after every mutation.
	DataFile string
	// LowStockThreshold marks items whose quantity falls below it.
	LowStockThreshold int
	// SearchDebounce is the quiet period before a query burst is evaluated.
	SearchDebounce time.Duration
	LogLevel       string
	Environment    string
}

// Load reads the configuration from the environment with sensible defaults
func Load() *Config {
	return &Config{
		DataFile:          getEnv("STOCKDESK_DATA_FILE", "inventory.csv"),
		LowStockThreshold: getEnvInt("STOCKDESK_LOW_STOCK", 5),
		SearchDebounce:    time.Duration(getEnvInt("STOCKDESK_DEBOUNCE_MS", 300)) * time.Millisecond,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Environment:       getEnv("ENVIRONMENT", "development"),
	}
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
