package orchestration

import (
	"errors"
	"fmt"
)

// Sentinel errors for terminal poll outcomes. Wrapped errors support
// errors.Is for callers that need to distinguish them.
var (
	// ErrJobFailed means a status query succeeded but the job reported
	// failure.
	ErrJobFailed = errors.New("job reported failure")

	// ErrPollTimeout means the attempt budget was exhausted without the job
	// reaching success or explicit failure.
	ErrPollTimeout = errors.New("poll attempts exhausted")
)

// ErrorKind classifies an aborting step error.
type ErrorKind int

const (
	// KindTransport means a device call failed outright.
	KindTransport ErrorKind = iota
	// KindJobFailed means the appliance reported job failure.
	KindJobFailed
	// KindPollTimeout means the retry budget ran out.
	KindPollTimeout
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindJobFailed:
		return "job failed"
	case KindPollTimeout:
		return "poll timeout"
	default:
		return "unknown"
	}
}

// StepError is the error that aborts a run. It names the first failing step
// and classifies the failure.
type StepError struct {
	Step string
	Kind ErrorKind
	Err  error
}

// Error implements error.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed (%s): %v", e.Step, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// classify maps an underlying step error to its ErrorKind.
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrJobFailed):
		return KindJobFailed
	case errors.Is(err, ErrPollTimeout):
		return KindPollTimeout
	default:
		return KindTransport
	}
}
