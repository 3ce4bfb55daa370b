package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds simulation engine configuration
type Config struct {
	// Simulation Configuration
	DefaultPolicy string `json:"default_policy"` // Replacement policy (fifo, lru, lfu, optimal, clock, random)
	FrameCount    int    `json:"frame_count"`    // Number of memory frames
	Seed          int64  `json:"seed"`           // Seed for the random policy

	// Trace Configuration
	TraceCompression string `json:"trace_compression"` // Compression for binary traces (none, lz4, snappy)

	// Performance Configuration
	EnableMetrics bool   `json:"enable_metrics"` // Whether to collect engine metrics
	LogLevel      string `json:"log_level"`      // Log level (debug, info, warn, error)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultPolicy:    "lru",
		FrameCount:       4,
		Seed:             1,
		TraceCompression: "snappy",
		EnableMetrics:    true,
		LogLevel:         "info",
	}
}

// LoadConfigFromFile loads configuration from a JSON file
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	err = json.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigFromEnv loads configuration from environment variables
// Falls back to default values if environment variables are not set
func LoadConfigFromEnv() *Config {
	config := DefaultConfig()

	if val := os.Getenv("PAGESIM_DEFAULT_POLICY"); val != "" {
		config.DefaultPolicy = val
	}

	if val := os.Getenv("PAGESIM_FRAME_COUNT"); val != "" {
		if count, err := strconv.Atoi(val); err == nil {
			config.FrameCount = count
		}
	}

	if val := os.Getenv("PAGESIM_SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Seed = seed
		}
	}

	if val := os.Getenv("PAGESIM_TRACE_COMPRESSION"); val != "" {
		config.TraceCompression = val
	}

	if val := os.Getenv("PAGESIM_ENABLE_METRICS"); val != "" {
		config.EnableMetrics = val == "true" || val == "1"
	}

	if val := os.Getenv("PAGESIM_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	return config
}

// SaveToFile saves the configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", " ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.FrameCount < 1 {
		return fmt.Errorf("frame count must be at least 1")
	}

	if _, err := ParsePolicy(c.DefaultPolicy); err != nil {
		return fmt.Errorf("invalid default policy: %s", c.DefaultPolicy)
	}

	if _, err := ParseCompression(c.TraceCompression); err != nil {
		return fmt.Errorf("invalid trace compression: %s (must be none, lz4, or snappy)", c.TraceCompression)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	return &Config{
		DefaultPolicy:    c.DefaultPolicy,
		FrameCount:       c.FrameCount,
		Seed:             c.Seed,
		TraceCompression: c.TraceCompression,
		EnableMetrics:    c.EnableMetrics,
		LogLevel:         c.LogLevel,
	}
}
