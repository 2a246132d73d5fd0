package orchestration

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepError_Message(t *testing.T) {
	t.Parallel()
	err := &StepError{Step: "poll base download", Kind: KindPollTimeout, Err: ErrPollTimeout}

	assert.Contains(t, err.Error(), "poll base download")
	assert.Contains(t, err.Error(), "poll timeout")
}

func TestStepError_Unwrap(t *testing.T) {
	t.Parallel()
	inner := fmt.Errorf("job 7 reported %q: %w", "FAIL", ErrJobFailed)
	err := &StepError{Step: "poll content install", Kind: KindJobFailed, Err: inner}

	assert.ErrorIs(t, err, ErrJobFailed)

	var stepErr *StepError
	require.ErrorAs(t, error(err), &stepErr)
	assert.Equal(t, KindJobFailed, stepErr.Kind)
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"job failure", fmt.Errorf("wrapped: %w", ErrJobFailed), KindJobFailed},
		{"poll timeout", fmt.Errorf("wrapped: %w", ErrPollTimeout), KindPollTimeout},
		{"anything else", errors.New("connection reset"), KindTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "transport error", KindTransport.String())
	assert.Equal(t, "job failed", KindJobFailed.String())
	assert.Equal(t, "poll timeout", KindPollTimeout.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}

func TestJobStatus_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pending", JobPending.String())
	assert.Equal(t, "success", JobSuccess.String())
	assert.Equal(t, "failed", JobFailed.String())
	assert.Equal(t, "unknown", JobStatus(99).String())
}
