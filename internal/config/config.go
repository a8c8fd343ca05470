// Package config provides configuration management for cashbook.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported store drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config represents the application configuration.
type Config struct {
	Store    StoreConfig
	Timezone string
	Debug    bool
	Plain    bool // print raw markdown instead of rendering it
}

// StoreConfig selects where the ledger state and history are kept.
type StoreConfig struct {
	Driver string
	Path   string
}

// Load loads configuration from environment variables.
// It loads .env from the current directory if present; a custom path may be given instead.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	driver := strings.ToLower(getEnvOrDefault("CASHBOOK_STORE_DRIVER", DriverBolt))

	config := &Config{
		Store: StoreConfig{
			Driver: driver,
			Path:   getEnvOrDefault("CASHBOOK_STORE_PATH", defaultStorePath(driver)),
		},
		Timezone: getEnvOrDefault("CASHBOOK_TIMEZONE", "Asia/Kolkata"),
		Debug:    os.Getenv("CASHBOOK_DEBUG") == "true",
		Plain:    os.Getenv("CASHBOOK_PLAIN") == "true",
	}

	return config, nil
}

// Validate checks the driver and time zone.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverBolt, DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("CASHBOOK_STORE_PATH is required for the %s driver", c.Store.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q (want %s, %s or %s)", c.Store.Driver, DriverBolt, DriverSQLite, DriverMemory)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid CASHBOOK_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func defaultStorePath(driver string) string {
	if driver == DriverSQLite {
		return ".cashbook/cashbook.sqlite"
	}
	return ".cashbook/cashbook.db"
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
