package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/fwupgrade/internal/device"
)

// DefaultSettleDelay is the pause between triggering the install reboot and
// the first readiness query, covering the window in which the appliance goes
// down.
const DefaultSettleDelay = 30 * time.Second

// Poll policies are fixed per step; they are not user-configurable.
var (
	contentDownloadPolicy = PollPolicy{MaxAttempts: 5, Delay: 10 * time.Second, Success: resultOK, Failure: resultFailed}
	contentInstallPolicy  = PollPolicy{MaxAttempts: 10, Delay: 30 * time.Second, Success: resultOK, Failure: resultFailed}
	baseDownloadPolicy    = PollPolicy{MaxAttempts: 10, Delay: 30 * time.Second, Success: resultOK, Failure: resultFailed}
	readinessPolicy       = PollPolicy{MaxAttempts: 50, Delay: 30 * time.Second, Success: isYes}
)

func resultOK(status string) bool     { return status == "OK" }
func resultFailed(status string) bool { return status == "FAIL" }
func isYes(status string) bool        { return status == "yes" }

// Sequencer executes the fixed upgrade step list against one appliance.
type Sequencer struct {
	device      device.Client
	poller      *Poller
	observer    Observer
	metrics     *Metrics
	settleDelay time.Duration
	sleep       SleepFunc
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithObserver sets the progress observer.
func WithObserver(o Observer) Option {
	return func(s *Sequencer) {
		s.observer = o
	}
}

// WithMetrics records step outcomes and poll attempts on m.
func WithMetrics(m *Metrics) Option {
	return func(s *Sequencer) {
		s.metrics = m
	}
}

// WithSettleDelay overrides the post-install settle delay.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Sequencer) {
		s.settleDelay = d
	}
}

// WithSleep replaces the delay function for both the settle step and the
// poll loops, letting tests run without real waits.
func WithSleep(f SleepFunc) Option {
	return func(s *Sequencer) {
		s.sleep = f
	}
}

// New creates a Sequencer driving the given device.
func New(dc device.Client, opts ...Option) *Sequencer {
	s := &Sequencer{
		device:      dc,
		observer:    NewConsoleObserver(),
		settleDelay: DefaultSettleDelay,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.poller = NewPoller(WithPollerSleep(s.sleep), WithPollerObserver(s.observer))
	return s
}

// Run executes the workflow for the given options. It returns the full
// outcome ledger (one entry per step, including skipped steps) and, on
// abort, a *StepError naming the first failing step.
//
// Failure is fail-fast: the first step error aborts the run and no rollback
// is attempted. The one structural exception is the poll step paired with a
// failed submission: it is recorded as skipped, never as a second failure,
// so one root cause is reported exactly once.
func (s *Sequencer) Run(ctx context.Context, opts UpgradeOptions) ([]StepOutcome, error) {
	steps := s.buildSteps(opts)
	outcomes := make([]StepOutcome, len(steps))
	for i, st := range steps {
		outcomes[i] = StepOutcome{Name: st.Name}
	}
	jobs := make(map[int]*Job)

	start := time.Now()
	s.observer.Printf("starting upgrade to %s (%d steps)", opts.TargetVersion, len(steps))

	for i, st := range steps {
		n := i + 1

		if !st.Guard(opts) {
			s.observer.Printf("[%d/%d] %s: skipped (not requested)", n, len(steps), st.Name)
			s.metrics.recordStep(st.Name, "skipped")
			continue
		}
		if st.DependsOn > 0 {
			dep := outcomes[st.DependsOn-1]
			if !dep.Ran || !dep.Succeeded {
				s.observer.Printf("[%d/%d] %s: skipped (step %q did not succeed)", n, len(steps), st.Name, dep.Name)
				s.metrics.recordStep(st.Name, "skipped")
				continue
			}
		}

		s.observer.Printf("[%d/%d] %s: starting", n, len(steps), st.Name)
		stepStart := time.Now()
		err := s.execute(ctx, st, n, jobs)

		outcomes[i].Ran = true
		outcomes[i].Succeeded = err == nil
		outcomes[i].Err = err
		outcomes[i].Duration = time.Since(stepStart)

		if err != nil {
			s.metrics.recordStep(st.Name, "failed")
			stepErr := &StepError{Step: st.Name, Kind: classify(err), Err: err}
			s.observer.Printf("[%d/%d] %s: failed: %v", n, len(steps), st.Name, err)
			s.metrics.recordRun(time.Since(start), false)
			return outcomes, stepErr
		}

		s.metrics.recordStep(st.Name, "success")
		s.observer.Printf("[%d/%d] %s: completed in %v", n, len(steps), st.Name, outcomes[i].Duration.Round(time.Millisecond))
	}

	s.observer.Printf("upgrade completed in %v", time.Since(start).Round(time.Millisecond))
	s.metrics.recordRun(time.Since(start), true)
	return outcomes, nil
}

// execute runs a single step's action. n is the step's 1-based number.
func (s *Sequencer) execute(ctx context.Context, st Step, n int, jobs map[int]*Job) error {
	switch a := st.Action.(type) {
	case fireAndForget:
		return a.call(ctx)

	case submitJob:
		resp, err := a.call(ctx)
		if err != nil {
			return err
		}
		id, err := resp.JobID()
		if err != nil {
			return err
		}
		jobs[n] = &Job{ID: id}
		s.observer.Printf("%s: job %s enqueued", st.Name, id)
		return nil

	case pollJob:
		job, ok := jobs[a.of]
		if !ok {
			// Unreachable when DependsOn points at the submission step.
			return fmt.Errorf("no job recorded by step %d", a.of)
		}
		return s.poller.Poll(ctx, job, s.countedQuery(st.Name, s.jobStatus), a.policy)

	case settle:
		s.observer.Printf("%s: waiting %v for the appliance to go down", st.Name, a.delay)
		return s.sleep(ctx, a.delay)

	case readiness:
		job := &Job{ID: "readiness"}
		query := func(ctx context.Context, _ string) (string, error) {
			return a.query(ctx)
		}
		return s.poller.Poll(ctx, job, s.countedQuery(st.Name, query), a.policy)

	default:
		return fmt.Errorf("unknown action kind %q", st.Action.kind())
	}
}

// jobStatus queries the appliance for one job's result field.
func (s *Sequencer) jobStatus(ctx context.Context, jobID string) (string, error) {
	resp, err := s.device.Execute(ctx, device.ShowJobs(jobID))
	if err != nil {
		return "", err
	}
	return resp.JobResult()
}

// countedQuery wraps a StatusQuery so every attempt is counted for the step.
func (s *Sequencer) countedQuery(step string, query StatusQuery) StatusQuery {
	return func(ctx context.Context, jobID string) (string, error) {
		s.metrics.recordPollAttempt(step)
		return query(ctx, jobID)
	}
}

// buildSteps returns the fixed ordered step list for one run.
func (s *Sequencer) buildSteps(opts UpgradeOptions) []Step {
	wantContent := func(o UpgradeOptions) bool { return o.UpgradeContent }
	wantBase := func(o UpgradeOptions) bool { return o.DownloadBaseVersion }

	return []Step{
		{
			Name:  "backup configuration",
			Guard: func(o UpgradeOptions) bool { return o.BackupConfig },
			Action: fireAndForget{call: func(ctx context.Context) error {
				_, err := s.device.Execute(ctx, device.SaveConfig(opts.BackupFilename))
				return err
			}},
		},
		{
			Name:  "download latest content",
			Guard: wantContent,
			Action: submitJob{call: func(ctx context.Context) (*device.Response, error) {
				return s.device.Execute(ctx, device.CmdContentDownload)
			}},
		},
		{
			Name:      "poll content download",
			Guard:     wantContent,
			DependsOn: 2,
			Action:    pollJob{of: 2, policy: contentDownloadPolicy},
		},
		{
			Name:  "install latest content",
			Guard: wantContent,
			Action: submitJob{call: func(ctx context.Context) (*device.Response, error) {
				return s.device.Execute(ctx, device.CmdContentInstall)
			}},
		},
		{
			Name:      "poll content install",
			Guard:     wantContent,
			DependsOn: 4,
			Action:    pollJob{of: 4, policy: contentInstallPolicy},
		},
		{
			Name:  "download base version",
			Guard: wantBase,
			Action: submitJob{call: func(ctx context.Context) (*device.Response, error) {
				return s.device.Execute(ctx, device.SoftwareDownload(opts.BaseVersion))
			}},
		},
		{
			Name:      "poll base download",
			Guard:     wantBase,
			DependsOn: 6,
			Action:    pollJob{of: 6, policy: baseDownloadPolicy},
		},
		{
			Name:  "install target version",
			Guard: always,
			Action: fireAndForget{call: func(ctx context.Context) error {
				return s.device.InstallVersion(ctx, opts.TargetVersion, true)
			}},
		},
		{
			Name:   "settle after reboot trigger",
			Guard:  always,
			Action: settle{delay: s.settleDelay},
		},
		{
			Name:  "wait for readiness",
			Guard: always,
			Action: readiness{
				query: func(ctx context.Context) (string, error) {
					resp, err := s.device.Execute(ctx, device.CmdChassisReady)
					if err != nil {
						return "", err
					}
					return resp.ResultText(), nil
				},
				policy: readinessPolicy,
			},
		},
	}
}
