package config

import (
	"fmt"
	"regexp"
)

// versionRegex matches firmware versions like "9.0.0" and hotfix builds like
// "9.0.3-h3".
var versionRegex = regexp.MustCompile(`^\d+\.\d+\.\d+(-h\d+)?$`)

// Validate checks that the configuration is complete enough to run an
// upgrade.
func (c *Config) Validate() error {
	if c.Device.Host == "" {
		return fmt.Errorf("device.host is required")
	}
	if c.Device.APIKey == "" {
		return fmt.Errorf("device API key is required (set device.api_key or %s)", APIKeyEnvVar)
	}
	if c.Upgrade.TargetVersion == "" {
		return fmt.Errorf("upgrade.target_version is required")
	}
	if !versionRegex.MatchString(c.Upgrade.TargetVersion) {
		return fmt.Errorf("upgrade.target_version %q is not a valid version", c.Upgrade.TargetVersion)
	}
	if !versionRegex.MatchString(c.Upgrade.BaseVersion) {
		return fmt.Errorf("upgrade.base_version %q is not a valid version", c.Upgrade.BaseVersion)
	}
	return nil
}
