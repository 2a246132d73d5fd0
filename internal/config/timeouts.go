package config

import (
	"os"
	"time"
)

// Timeouts holds operational timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	// HTTPRequest bounds each individual API request to the appliance.
	HTTPRequest time.Duration

	// SettleDelay is the pause between triggering the install reboot and
	// the first readiness query.
	SettleDelay time.Duration
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - FWUPGRADE_TIMEOUT_HTTP (default: 60s)
//   - FWUPGRADE_SETTLE_DELAY (default: 30s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		HTTPRequest: parseDuration("FWUPGRADE_TIMEOUT_HTTP", 60*time.Second),
		SettleDelay: parseDuration("FWUPGRADE_SETTLE_DELAY", 30*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
