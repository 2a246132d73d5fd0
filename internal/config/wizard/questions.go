package wizard

import (
	"context"
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"
)

var (
	hostRegex    = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.\-:]*$`)
	versionRegex = regexp.MustCompile(`^\d+\.\d+\.\d+(-h\d+)?$`)
)

// runDeviceGroup prompts for the appliance address and credentials.
func runDeviceGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Appliance Host").
				Description("Management address of the appliance").
				Placeholder("fw1.example.com").
				Value(&result.Host).
				Validate(validateHost),
			huh.NewInput().
				Title("API Key").
				Description("Leave empty to use the FWUPGRADE_API_KEY environment variable").
				EchoMode(huh.EchoModePassword).
				Value(&result.APIKey),
			huh.NewConfirm().
				Title("Skip TLS Verification?").
				Description("Enable for appliances with self-signed management certificates").
				Value(&result.Insecure),
		).Title("Appliance"),
	).RunWithContext(ctx)
}

// runUpgradeGroup prompts for the workflow options.
func runUpgradeGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target Version").
				Description("Firmware version to install, e.g. 9.0.3-h3").
				Placeholder("9.0.3-h3").
				Value(&result.TargetVersion).
				Validate(validateVersion),
			huh.NewConfirm().
				Title("Backup Configuration First?").
				Value(&result.BackupConfig),
			huh.NewConfirm().
				Title("Update Content Before Upgrading?").
				Value(&result.UpgradeContent),
			huh.NewConfirm().
				Title("Stage Base Version?").
				Description("Download the base image the target version builds on").
				Value(&result.DownloadBaseVersion),
		).Title("Upgrade"),
	).RunWithContext(ctx)
}

// runBaseVersionGroup prompts for the base version when staging is enabled.
func runBaseVersionGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Base Version").
				Placeholder("9.0.0").
				Value(&result.BaseVersion).
				Validate(validateVersion),
		).Title("Base Version"),
	).RunWithContext(ctx)
}

func validateHost(s string) error {
	if !hostRegex.MatchString(s) {
		return fmt.Errorf("not a valid hostname or address")
	}
	return nil
}

func validateVersion(s string) error {
	if !versionRegex.MatchString(s) {
		return fmt.Errorf("expected a version like 9.0.3-h3")
	}
	return nil
}
