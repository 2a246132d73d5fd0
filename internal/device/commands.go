package device

import "fmt"

// Operational command bodies for the upgrade workflow. These are fixed
// appliance commands; anything that takes an argument has a builder below.
const (
	// CmdContentDownload requests download of the latest content release.
	CmdContentDownload = "<request><content><upgrade><download><latest/></download></upgrade></content></request>"

	// CmdContentInstall installs the most recently downloaded content release.
	CmdContentInstall = "<request><content><upgrade><install><version>latest</version></install></upgrade></content></request>"

	// CmdRestart restarts the appliance.
	CmdRestart = "<request><restart><system/></restart></request>"

	// CmdChassisReady reports whether the appliance has finished booting and
	// is ready to serve. The result is "yes" or "no".
	CmdChassisReady = "<show><chassis-ready/></show>"
)

// SaveConfig returns the command that saves the running configuration to the
// named file on the appliance.
func SaveConfig(filename string) string {
	return fmt.Sprintf("<save><config><to>%s</to></config></save>", filename)
}

// SoftwareDownload returns the command that downloads the given firmware
// version onto the appliance.
func SoftwareDownload(version string) string {
	return fmt.Sprintf("<request><system><software><download><version>%s</version></download></software></system></request>", version)
}

// SoftwareInstall returns the command that installs the given firmware
// version.
func SoftwareInstall(version string) string {
	return fmt.Sprintf("<request><system><software><install><version>%s</version></install></software></system></request>", version)
}

// ShowJobs returns the command that queries the status of a single job.
func ShowJobs(id string) string {
	return fmt.Sprintf("<show><jobs><id>%s</id></jobs></show>", id)
}
