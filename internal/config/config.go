// Package config loads environment-driven defaults for the CLI.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the tool's environment configuration. All variables carry the
// FILE2JSON_ prefix.
type Config struct {
	// Environment selects the logging profile: development or production.
	Environment string
	// MaxFileSizeMB rejects inputs larger than this. 0 = unlimited.
	MaxFileSizeMB int64
	// SampleRows bounds the format-detection sample.
	SampleRows int
}

// Load reads configuration from environment variables and an optional .env
// file. Flags passed to the CLI take precedence over anything loaded here.
func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FILE2JSON")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("MAX_FILE_SIZE_MB", 0)
	v.SetDefault("SAMPLE_ROWS", 5)

	cfg := &Config{
		Environment:   v.GetString("ENV"),
		MaxFileSizeMB: v.GetInt64("MAX_FILE_SIZE_MB"),
		SampleRows:    v.GetInt("SAMPLE_ROWS"),
	}

	if cfg.SampleRows <= 0 {
		return nil, fmt.Errorf("FILE2JSON_SAMPLE_ROWS must be positive, got %d", cfg.SampleRows)
	}
	if cfg.MaxFileSizeMB < 0 {
		return nil, fmt.Errorf("FILE2JSON_MAX_FILE_SIZE_MB must not be negative, got %d", cfg.MaxFileSizeMB)
	}
	return cfg, nil
}

// MaxFileSize returns the size limit in bytes, 0 meaning unlimited.
func (c *Config) MaxFileSize() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// IsProduction reports whether the production profile is active.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
