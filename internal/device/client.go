// Package device provides a client for the appliance's XML management API.
//
// The appliance exposes an asynchronous, job-based command API: operational
// commands are submitted over HTTPS, long-running commands return a job
// identifier, and callers poll the job status endpoint until the job reports
// a terminal result. This package owns transport, authentication, and
// response parsing; the upgrade sequencing itself lives in
// internal/orchestration.
package device

import "context"

// Client defines the interface for executing commands against one appliance.
type Client interface {
	// Execute runs a named operational command and returns the parsed
	// response. cmd is the XML-encoded command body.
	Execute(ctx context.Context, cmd string) (*Response, error)

	// InstallVersion triggers a firmware install of the given version and,
	// when restart is true, a system restart afterwards. The appliance is
	// expected to become unreachable while it reboots.
	InstallVersion(ctx context.Context, version string, restart bool) error
}
