package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string

	// InventoryPath points at a JSON inventory; empty means the built-in fixture
	InventoryPath string
	// Days is the number of days to simulate after the initial state
	Days int
	// MetricsPath is where run metrics are written; empty disables export
	MetricsPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:      getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:     getEnv(EnvLogFormat, DefaultLogFormat),
		ServiceName:   getEnv(EnvServiceName, DefaultServiceName),
		Version:       getEnv(EnvVersion, DefaultVersion),
		InventoryPath: getEnv(EnvInventoryPath, ""),
		MetricsPath:   getEnv(EnvMetricsPath, ""),
	}

	daysStr := getEnv(EnvDays, strconv.Itoa(DefaultDays))
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvDays, err)
	}
	cfg.Days = days

	return cfg, nil
}

// IsDevelopment reports whether the config targets a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
