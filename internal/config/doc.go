// Package config loads and validates the fwupgrade YAML configuration.
//
// The configuration names the target appliance and resolves the upgrade
// options driving the workflow. Operational timeouts can be overridden via
// FWUPGRADE_* environment variables.
package config
