package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file, applying
// defaults. Validation is the caller's responsibility so command-line
// overrides can be applied first.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Device.APIKey == "" {
		c.Device.APIKey = os.Getenv(APIKeyEnvVar)
	}
	if c.Upgrade.BaseVersion == "" {
		c.Upgrade.BaseVersion = DefaultBaseVersion
	}
	if c.Upgrade.BackupFilename == "" {
		c.Upgrade.BackupFilename = DefaultBackupFilename(time.Now())
	}
}
