package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fwupgrade/cmd/fwupgrade/handlers"
)

// Run returns the command that executes the upgrade workflow.
//
// The workflow is driven entirely by the configuration file; flags
// override individual settings for one-off runs.
//
// Required flags:
//
//	--config, -c: Path to the upgrade configuration YAML file
//
// Environment variables:
//
//	FWUPGRADE_API_KEY: Appliance API key (preferred over the config file)
func Run() *cobra.Command {
	var (
		configPath          string
		targetVersion       string
		baseVersion         string
		backupFilename      string
		backupConfig        bool
		upgradeContent      bool
		downloadBaseVersion bool
		insecure            bool
		logJSON             bool
		pushGateway         string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the firmware upgrade workflow",
		Long: `Execute the firmware upgrade workflow against the configured appliance.

The workflow runs these steps in order, skipping the ones the
configuration disables:

1. Back up the running configuration on the appliance
2. Download and install the latest content bundle
3. Download the base software version (for multi-hop upgrades)
4. Install the target version and restart the appliance
5. Wait for the appliance to report ready after the reboot

Each device-side action is submitted as an asynchronous job and polled
until it finishes. A failed or timed-out job aborts the run; steps that
depend on it are reported as skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := handlers.RunOptions{
				ConfigPath:     configPath,
				TargetVersion:  targetVersion,
				BaseVersion:    baseVersion,
				BackupFilename: backupFilename,
				Insecure:       insecure,
				LogJSON:        logJSON,
				PushGateway:    pushGateway,
			}
			// Only explicitly set booleans override the config file.
			if cmd.Flags().Changed("backup-config") {
				opts.BackupConfig = &backupConfig
			}
			if cmd.Flags().Changed("upgrade-content") {
				opts.UpgradeContent = &upgradeContent
			}
			if cmd.Flags().Changed("download-base-version") {
				opts.DownloadBaseVersion = &downloadBaseVersion
			}
			return handlers.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVar(&targetVersion, "target-version", "", "Override the target firmware version from config")
	cmd.Flags().StringVar(&baseVersion, "base-version", "", "Override the base version from config")
	cmd.Flags().StringVar(&backupFilename, "backup-filename", "", "Override the configuration backup filename")
	cmd.Flags().BoolVar(&backupConfig, "backup-config", true, "Back up the appliance configuration before upgrading")
	cmd.Flags().BoolVar(&upgradeContent, "upgrade-content", false, "Download and install the latest content bundle first")
	cmd.Flags().BoolVar(&downloadBaseVersion, "download-base-version", false, "Stage the base software version before the target install")
	cmd.Flags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit structured JSON logs instead of plain text")
	cmd.Flags().StringVar(&pushGateway, "pushgateway", "", "Push run metrics to this Prometheus Pushgateway URL")

	// MarkFlagRequired cannot fail for flags defined on the same command
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
