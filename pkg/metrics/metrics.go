package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Seed collects seeding counters on its own registry so tests can build
// as many as they need.
type Seed struct {
	registry     *prometheus.Registry
	rowsInserted *prometheus.CounterVec
	stepDuration *prometheus.HistogramVec
	runs         *prometheus.CounterVec
}

func NewSeed() *Seed {
	m := &Seed{
		registry: prometheus.NewRegistry(),
		rowsInserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seed_rows_inserted_total",
				Help: "Reference rows inserted by the seeder",
			},
			[]string{"step"},
		),
		stepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "seed_step_duration_seconds",
				Help:    "Time spent in one seeding step",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"step"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seed_runs_total",
				Help: "Seeding runs by result",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.rowsInserted,
		m.stepDuration,
		m.runs,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Seed) ObserveStep(step string, inserted int, d time.Duration) {
	m.rowsInserted.WithLabelValues(step).Add(float64(inserted))
	m.stepDuration.WithLabelValues(step).Observe(d.Seconds())
}

func (m *Seed) ObserveRun(err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}

	m.runs.WithLabelValues(result).Inc()
}

func (m *Seed) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Seed) Registry() *prometheus.Registry {
	return m.registry
}
