package orchestration

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects run statistics on a private registry. A run is a batch
// job, so the registry is meant to be pushed (or dumped) once at the end
// rather than scraped. A nil *Metrics disables collection.
type Metrics struct {
	registry *prometheus.Registry

	stepsTotal        *prometheus.CounterVec
	pollAttemptsTotal *prometheus.CounterVec
	runDuration       prometheus.Gauge
	runSuccess        prometheus.Gauge
}

// NewMetrics creates a Metrics with all collectors registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fwupgrade",
				Name:      "steps_total",
				Help:      "Step outcomes by step name and result",
			},
			[]string{"step", "result"},
		),
		pollAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fwupgrade",
				Name:      "poll_attempts_total",
				Help:      "Status queries issued per polling step",
			},
			[]string{"step"},
		),
		runDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "fwupgrade",
				Name:      "run_duration_seconds",
				Help:      "Wall-clock duration of the upgrade run",
			},
		),
		runSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "fwupgrade",
				Name:      "run_success",
				Help:      "1 if the run completed, 0 if it aborted",
			},
		),
	}
	m.registry.MustRegister(m.stepsTotal, m.pollAttemptsTotal, m.runDuration, m.runSuccess)
	return m
}

// Registry returns the registry holding the run's collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) recordStep(step, result string) {
	if m == nil {
		return
	}
	m.stepsTotal.WithLabelValues(step, result).Inc()
}

func (m *Metrics) recordPollAttempt(step string) {
	if m == nil {
		return
	}
	m.pollAttemptsTotal.WithLabelValues(step).Inc()
}

func (m *Metrics) recordRun(d time.Duration, ok bool) {
	if m == nil {
		return
	}
	m.runDuration.Set(d.Seconds())
	if ok {
		m.runSuccess.Set(1)
	} else {
		m.runSuccess.Set(0)
	}
}
