package orchestration

import (
	"context"
	"time"

	"github.com/imamik/fwupgrade/internal/device"
)

// Step is one named unit of work in the upgrade workflow.
type Step struct {
	// Name identifies the step in logs, errors, and the run summary.
	Name string

	// Guard reports whether the step runs at all for the given options.
	// A false guard is a skip, never a failure.
	Guard func(opts UpgradeOptions) bool

	// DependsOn is the 1-based number of a prior step whose recorded outcome
	// must be a success for this step to run; 0 means no dependency. A
	// failed or skipped prerequisite results in a silent skip.
	DependsOn int

	// Action is what the step does when it runs.
	Action Action
}

// StepOutcome records how a step concluded. Outcomes are kept in a ledger
// indexed by step and consulted by dependent steps.
type StepOutcome struct {
	Name      string
	Ran       bool
	Succeeded bool
	Err       error
	Duration  time.Duration
}

// Action is the work a step performs. The concrete variants below are the
// only implementations.
type Action interface {
	kind() string
}

// fireAndForget is a single blocking device call with no job to poll.
type fireAndForget struct {
	call func(ctx context.Context) error
}

func (fireAndForget) kind() string { return "call" }

// submitJob submits a long-running command and records the returned job
// identifier for a later poll step.
type submitJob struct {
	call func(ctx context.Context) (*device.Response, error)
}

func (submitJob) kind() string { return "submit" }

// pollJob polls the job recorded by a prior submission step.
type pollJob struct {
	// of is the 1-based number of the submission step that produced the job.
	of     int
	policy PollPolicy
}

func (pollJob) kind() string { return "poll" }

// settle is an unconditional fixed delay.
type settle struct {
	delay time.Duration
}

func (settle) kind() string { return "settle" }

// readiness polls a self-answering query with no separate submission.
type readiness struct {
	query  func(ctx context.Context) (string, error)
	policy PollPolicy
}

func (readiness) kind() string { return "readiness" }

// always is the guard for unconditional steps.
func always(UpgradeOptions) bool { return true }
