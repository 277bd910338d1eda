package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.IncludeChannelInfo)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-api-key")
	t.Setenv("YOUTUBE_CHANNEL_URL", "https://www.youtube.com/@testchan")
	t.Setenv("ARCHIVER_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("ARCHIVER_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-api-key", cfg.APIKey)
	assert.Equal(t, "https://www.youtube.com/@testchan", cfg.ChannelURL)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-api-key")
	t.Setenv("YOUTUBE_CHANNEL_URL", "@testchan")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.IncludeChannelInfo)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid configuration",
			cfg: Config{
				APIKey:     "key",
				ChannelURL: "@testchan",
				OutputDir:  "output",
				Timeout:    30 * time.Second,
			},
		},
		{
			name: "missing API key",
			cfg: Config{
				ChannelURL: "@testchan",
				OutputDir:  "output",
				Timeout:    30 * time.Second,
			},
			wantErr: ErrMissingAPIKey,
		},
		{
			name: "missing channel URL",
			cfg: Config{
				APIKey:    "key",
				OutputDir: "output",
				Timeout:   30 * time.Second,
			},
			wantErr: ErrMissingChannelURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cfg := Config{APIKey: "key", ChannelURL: "@testchan", Timeout: 30 * time.Second}
	assert.Error(t, cfg.Validate(), "empty output dir must be rejected")

	cfg = Config{APIKey: "key", ChannelURL: "@testchan", OutputDir: "output"}
	assert.Error(t, cfg.Validate(), "zero timeout must be rejected")
}
