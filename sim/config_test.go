package sim

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.FrameCount != 4 {
		t.Errorf("Expected frame count 4, got %d", config.FrameCount)
	}

	if config.DefaultPolicy != "lru" {
		t.Errorf("Expected default policy 'lru', got '%s'", config.DefaultPolicy)
	}

	if !config.EnableMetrics {
		t.Error("Expected metrics to be enabled by default")
	}

	if config.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got '%s'", config.LogLevel)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:        "valid config",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "zero frame count",
			mutate:      func(c *Config) { c.FrameCount = 0 },
			expectError: true,
		},
		{
			name:        "negative frame count",
			mutate:      func(c *Config) { c.FrameCount = -3 },
			expectError: true,
		},
		{
			name:        "unknown policy",
			mutate:      func(c *Config) { c.DefaultPolicy = "mru" },
			expectError: true,
		},
		{
			name:        "unknown compression",
			mutate:      func(c *Config) { c.TraceCompression = "gzip" },
			expectError: true,
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "trace" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := DefaultConfig()
	config.DefaultPolicy = "clock"
	config.FrameCount = 8
	config.Seed = 1234

	if err := config.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile failed: %v", err)
	}

	if loaded.DefaultPolicy != "clock" {
		t.Errorf("Expected policy 'clock', got '%s'", loaded.DefaultPolicy)
	}
	if loaded.FrameCount != 8 {
		t.Errorf("Expected frame count 8, got %d", loaded.FrameCount)
	}
	if loaded.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", loaded.Seed)
	}
}

func TestLoadConfigFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"frame_count": 0}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfigFromFile(path); err == nil {
		t.Error("Expected error for invalid config file")
	}

	if _, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PAGESIM_DEFAULT_POLICY", "fifo")
	t.Setenv("PAGESIM_FRAME_COUNT", "16")
	t.Setenv("PAGESIM_SEED", "77")
	t.Setenv("PAGESIM_TRACE_COMPRESSION", "lz4")
	t.Setenv("PAGESIM_ENABLE_METRICS", "false")
	t.Setenv("PAGESIM_LOG_LEVEL", "debug")

	config := LoadConfigFromEnv()

	if config.DefaultPolicy != "fifo" {
		t.Errorf("Expected policy 'fifo', got '%s'", config.DefaultPolicy)
	}
	if config.FrameCount != 16 {
		t.Errorf("Expected frame count 16, got %d", config.FrameCount)
	}
	if config.Seed != 77 {
		t.Errorf("Expected seed 77, got %d", config.Seed)
	}
	if config.TraceCompression != "lz4" {
		t.Errorf("Expected compression 'lz4', got '%s'", config.TraceCompression)
	}
	if config.EnableMetrics {
		t.Error("Expected metrics disabled")
	}
	if config.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", config.LogLevel)
	}
}

func TestConfigClone(t *testing.T) {
	config := DefaultConfig()
	clone := config.Clone()

	clone.FrameCount = 99
	clone.DefaultPolicy = "optimal"

	if config.FrameCount == 99 || config.DefaultPolicy == "optimal" {
		t.Error("Clone should not share state with the original")
	}
}
