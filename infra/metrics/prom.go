package metrics

import (
	coremetrics "github.com/vicharak-in/tlinker/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records scheduling activity in Prometheus metrics.
type PromSink struct {
	sessions *prometheus.CounterVec
	runs     prometheus.Counter
	skipped  prometheus.Counter
	duration prometheus.Histogram
	lastSize prometheus.Gauge
}

// NewPromSink registers scheduling metrics on the default Prometheus
// registerer. The metrics server is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	sessions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_sessions_total",
		Help: "Total number of scheduled sessions",
	}, []string{"program", "day", "room"})
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_runs_total",
		Help: "Total number of scheduling runs",
	})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_skipped_selections_total",
		Help: "Selections dropped for unknown course codes",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_run_duration_seconds",
		Help:    "Wall time of one scheduling run",
		Buckets: prometheus.DefBuckets,
	})
	lastSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_last_run_sessions",
		Help: "Number of sessions emitted by the most recent run",
	})

	collectors := []prometheus.Collector{sessions, runs, skipped, duration, lastSize}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			collectors[i] = are.ExistingCollector
		}
	}
	return &PromSink{
		sessions: collectors[0].(*prometheus.CounterVec),
		runs:     collectors[1].(prometheus.Counter),
		skipped:  collectors[2].(prometheus.Counter),
		duration: collectors[3].(prometheus.Histogram),
		lastSize: collectors[4].(prometheus.Gauge),
	}, nil
}

// RecordSessions increments the session counter per placed session.
func (s *PromSink) RecordSessions(recs []coremetrics.SessionRecord) error {
	for _, r := range recs {
		s.sessions.WithLabelValues(r.Program, r.Day, r.Room).Inc()
	}
	return nil
}

// RecordRun records run-level counters and the duration histogram.
func (s *PromSink) RecordRun(sum coremetrics.RunSummary) error {
	s.runs.Inc()
	s.skipped.Add(float64(sum.Skipped))
	s.duration.Observe(sum.Elapsed.Seconds())
	s.lastSize.Set(float64(sum.Sessions))
	return nil
}
