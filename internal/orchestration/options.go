package orchestration

// UpgradeOptions configures which steps of the upgrade workflow run.
// It is resolved before sequencing begins and is immutable for the run.
type UpgradeOptions struct {
	// BackupConfig saves the running configuration before any change.
	BackupConfig bool

	// BackupFilename is the name of the configuration backup on the
	// appliance.
	BackupFilename string

	// UpgradeContent downloads and installs the latest content release
	// before the firmware upgrade.
	UpgradeContent bool

	// DownloadBaseVersion stages the base firmware image the target version
	// builds on.
	DownloadBaseVersion bool

	// BaseVersion is the base firmware version to stage, e.g. "9.0.0".
	BaseVersion string

	// TargetVersion is the firmware version to install, e.g. "9.0.3-h3".
	TargetVersion string
}
