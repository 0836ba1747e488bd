// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MaxUIQubits bounds the register size the explorer will display.
const MaxUIQubits = 8

// Config holds application configuration
type Config struct {
	Qubits    int    // initial register width
	Shots     int    // samples drawn for the histogram
	Seed      uint64 // 0 selects the process-wide random source
	LogLevel  string
	LogPretty bool
	LogFile   string // empty discards logs
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	qubits, err := getEnvAsInt("QDECK_QUBITS", 3)
	if err != nil {
		return nil, err
	}
	shots, err := getEnvAsInt("QDECK_SHOTS", 1024)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvAsUint("QDECK_SEED", 0)
	if err != nil {
		return nil, err
	}
	pretty, err := getEnvAsBool("QDECK_LOG_PRETTY", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Qubits:    qubits,
		Shots:     shots,
		Seed:      seed,
		LogLevel:  strings.ToLower(getEnv("QDECK_LOG_LEVEL", "info")),
		LogPretty: pretty,
		LogFile:   getEnv("QDECK_LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Qubits < 1 || c.Qubits > MaxUIQubits {
		return fmt.Errorf("QDECK_QUBITS must be between 1 and %d, got %d", MaxUIQubits, c.Qubits)
	}
	if c.Shots < 1 {
		return fmt.Errorf("QDECK_SHOTS must be positive, got %d", c.Shots)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("QDECK_LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvAsUint(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
