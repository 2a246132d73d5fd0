package orchestration

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fwupgrade/internal/device"
)

func TestMetrics_NilIsSafe(_ *testing.T) {
	var m *Metrics
	m.recordStep("backup configuration", "success")
	m.recordPollAttempt("wait for readiness")
	m.recordRun(time.Second, true)
}

func TestMetrics_RecordsStepOutcomes(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.recordStep("backup configuration", "success")
	m.recordStep("poll content download", "skipped")
	m.recordStep("poll content download", "skipped")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.stepsTotal.WithLabelValues("backup configuration", "success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.stepsTotal.WithLabelValues("poll content download", "skipped")))
}

func TestMetrics_RecordsPollAttempts(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	for range 3 {
		m.recordPollAttempt("wait for readiness")
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(m.pollAttemptsTotal.WithLabelValues("wait for readiness")))
}

func TestMetrics_RecordsRun(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.recordRun(90*time.Second, false)

	assert.Equal(t, float64(90), testutil.ToFloat64(m.runDuration))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.runSuccess))
}

func TestMetrics_WiredIntoSequencerRun(t *testing.T) {
	t.Parallel()
	m := NewMetrics()
	state := newApplianceState()
	state.readinessAfter = 2
	mock := &device.MockClient{ExecuteFunc: state.execute}
	s := New(mock, WithObserver(Discard), WithSleep(instantSleep), WithMetrics(m))

	_, err := s.Run(context.Background(), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.stepsTotal.WithLabelValues("backup configuration", "success")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.pollAttemptsTotal.WithLabelValues("wait for readiness")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.runSuccess))
}
