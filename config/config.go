// Package config provides configuration for the archiver
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrMissingAPIKey indicates the YouTube Data API credential is absent.
	ErrMissingAPIKey = errors.New("missing YouTube API key (set YOUTUBE_API_KEY)")

	// ErrMissingChannelURL indicates no channel URL or handle was supplied.
	ErrMissingChannelURL = errors.New("missing channel URL (set YOUTUBE_CHANNEL_URL or pass --url)")
)

// Config holds all settings for a single archive run.
type Config struct {
	APIKey             string        // YouTube Data API key
	ChannelURL         string        // Channel URL or @handle to archive
	OutputDir          string        // Directory the report is written to
	Timeout            time.Duration // HTTP timeout for API calls
	IncludeChannelInfo bool          // Prepend the channel header block to the report
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:          "output",
		Timeout:            30 * time.Second,
		IncludeChannelInfo: true,
	}
}

// Load reads configuration from environment variables on top of the
// defaults. CLI flags may override individual fields afterwards.
func Load() (*Config, error) {
	v := viper.New()

	if err := v.BindEnv("api_key", "YOUTUBE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}
	if err := v.BindEnv("channel_url", "YOUTUBE_CHANNEL_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}
	if err := v.BindEnv("output_dir", "ARCHIVER_OUTPUT_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}
	if err := v.BindEnv("timeout", "ARCHIVER_TIMEOUT"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	defaults := DefaultConfig()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("timeout", defaults.Timeout.String())

	cfg := &Config{
		APIKey:             v.GetString("api_key"),
		ChannelURL:         v.GetString("channel_url"),
		OutputDir:          v.GetString("output_dir"),
		Timeout:            v.GetDuration("timeout"),
		IncludeChannelInfo: defaults.IncludeChannelInfo,
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.ChannelURL == "" {
		return ErrMissingChannelURL
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	return nil
}
