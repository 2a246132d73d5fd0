package config

import (
	"time"

	"github.com/imamik/fwupgrade/internal/orchestration"
)

// DefaultBaseVersion is staged when no base version is configured.
const DefaultBaseVersion = "9.0.0"

// APIKeyEnvVar supplies the appliance API key when it is not in the file.
const APIKeyEnvVar = "FWUPGRADE_API_KEY"

// Config is the full fwupgrade configuration.
type Config struct {
	Device  DeviceConfig  `yaml:"device"`
	Upgrade UpgradeConfig `yaml:"upgrade"`
}

// DeviceConfig identifies and authenticates the target appliance.
type DeviceConfig struct {
	// Host is the appliance management address.
	Host string `yaml:"host"`

	// APIKey authenticates against the management API. Prefer the
	// FWUPGRADE_API_KEY environment variable over storing it here.
	APIKey string `yaml:"api_key,omitempty"`

	// Insecure skips TLS certificate verification.
	Insecure bool `yaml:"insecure,omitempty"`
}

// UpgradeConfig holds the workflow options. BackupConfig is a pointer so an
// absent key defaults to true while an explicit false is honored.
type UpgradeConfig struct {
	BackupConfig        *bool  `yaml:"backup_config,omitempty"`
	BackupFilename      string `yaml:"backup_filename,omitempty"`
	UpgradeContent      bool   `yaml:"upgrade_content,omitempty"`
	DownloadBaseVersion bool   `yaml:"download_base_version,omitempty"`
	BaseVersion         string `yaml:"base_version,omitempty"`
	TargetVersion       string `yaml:"target_version"`
}

// Options resolves the configuration into the immutable options the
// sequencer consumes.
func (c *Config) Options() orchestration.UpgradeOptions {
	return orchestration.UpgradeOptions{
		BackupConfig:        c.Upgrade.BackupConfig == nil || *c.Upgrade.BackupConfig,
		BackupFilename:      c.Upgrade.BackupFilename,
		UpgradeContent:      c.Upgrade.UpgradeContent,
		DownloadBaseVersion: c.Upgrade.DownloadBaseVersion,
		BaseVersion:         c.Upgrade.BaseVersion,
		TargetVersion:       c.Upgrade.TargetVersion,
	}
}

// DefaultBackupFilename returns a timestamped name for the configuration
// backup saved on the appliance.
func DefaultBackupFilename(now time.Time) string {
	return "config-backup-" + now.Format("20060102-150405") + ".xml"
}
