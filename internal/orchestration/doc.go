// Package orchestration sequences the firmware upgrade workflow against a
// single appliance.
//
// The workflow is a fixed, partially conditional list of steps: configuration
// backup, content update, base-version staging, target-version install,
// reboot settle, and readiness check. Long-running steps submit a command,
// receive a job identifier, and hand it to a Poller that queries job status
// on a fixed cadence until a success predicate holds, the job reports
// failure, or the attempt budget runs out.
//
// Steps execute strictly sequentially on one goroutine. The only suspension
// points are the poll delays and the post-install settle delay; both respect
// context cancellation.
package orchestration
