package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Device: DeviceConfig{Host: "fw1.example.com", APIKey: "secret"},
		Upgrade: UpgradeConfig{
			TargetVersion: "9.0.3-h3",
			BaseVersion:   "9.0.0",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validConfig().Validate())
}

func TestValidate_MissingHost(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Device.Host = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device.host")
}

func TestValidate_MissingAPIKey(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Device.APIKey = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestValidate_MissingTargetVersion(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Upgrade.TargetVersion = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_version")
}

func TestValidate_VersionFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		version string
		valid   bool
	}{
		{"9.0.0", true},
		{"9.0.3-h3", true},
		{"10.2.11-h17", true},
		{"latest", false},
		{"9.0", false},
		{"9.0.3-hx", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			cfg.Upgrade.TargetVersion = tt.version
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_BadBaseVersion(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Upgrade.BaseVersion = "nine"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_version")
}
