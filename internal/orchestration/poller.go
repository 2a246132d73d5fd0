package orchestration

import (
	"context"
	"fmt"
	"time"
)

// StatusQuery fetches the current status string for a job. It may fail with a
// transport error, for example while the appliance reboots.
type StatusQuery func(ctx context.Context, jobID string) (string, error)

// PollPolicy bounds one polling loop. Policies are fixed per step at
// step-definition time.
type PollPolicy struct {
	// MaxAttempts is the number of status queries before giving up. Values
	// below 1 are treated as 1.
	MaxAttempts int

	// Delay is the constant pause before each attempt after the first.
	Delay time.Duration

	// Success reports whether a status string is a successful terminal
	// result.
	Success func(status string) bool

	// Failure reports whether a status string is an explicit failure. Nil
	// means the job never fails explicitly and only the budget bounds it.
	Failure func(status string) bool
}

// SleepFunc blocks for the given duration or until the context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// sleepContext is the default SleepFunc.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Poller repeatedly queries job status until a policy-terminal outcome.
type Poller struct {
	sleep    SleepFunc
	observer Observer
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithPollerSleep replaces the delay function, letting tests run without
// real waits.
func WithPollerSleep(f SleepFunc) PollerOption {
	return func(p *Poller) {
		p.sleep = f
	}
}

// WithPollerObserver sets the progress observer.
func WithPollerObserver(o Observer) PollerOption {
	return func(p *Poller) {
		p.observer = o
	}
}

// NewPoller creates a Poller with optional configuration.
func NewPoller(opts ...PollerOption) *Poller {
	p := &Poller{
		sleep:    sleepContext,
		observer: Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Poll runs up to policy.MaxAttempts status queries for job, pausing
// policy.Delay before each attempt after the first. A query error consumes
// the attempt; the query itself is never retried within an attempt. The
// job's LastStatus is updated only to a terminal state.
//
// At least one query always executes. Returns nil on success, an error
// wrapping ErrJobFailed when the failure predicate holds, and an error
// wrapping ErrPollTimeout when the budget runs out.
func (p *Poller) Poll(ctx context.Context, job *Job, query StatusQuery, policy PollPolicy) error {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	lastStatus := ""

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := p.sleep(ctx, policy.Delay); err != nil {
				return fmt.Errorf("polling interrupted after %d attempts: %w", attempt-1, err)
			}
		}

		status, err := query(ctx, job.ID)
		if err != nil {
			// Attempt consumed; transient unreachability is expected while
			// the appliance reboots.
			lastErr = err
			p.observer.Printf("job %s: status query failed (attempt %d/%d): %v", job.ID, attempt, attempts, err)
			continue
		}

		lastErr = nil
		lastStatus = status

		if policy.Success(status) {
			job.LastStatus = JobSuccess
			job.ResultDetail = status
			return nil
		}
		if policy.Failure != nil && policy.Failure(status) {
			job.LastStatus = JobFailed
			job.ResultDetail = status
			return fmt.Errorf("job %s reported %q: %w", job.ID, status, ErrJobFailed)
		}

		p.observer.Printf("job %s: status %q (attempt %d/%d)", job.ID, status, attempt, attempts)
	}

	job.LastStatus = JobFailed
	if lastErr != nil {
		return fmt.Errorf("job %s not finished after %d attempts, last query error: %v: %w", job.ID, attempts, lastErr, ErrPollTimeout)
	}
	return fmt.Errorf("job %s not finished after %d attempts, last status %q: %w", job.ID, attempts, lastStatus, ErrPollTimeout)
}
