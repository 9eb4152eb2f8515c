// Package metrics defines the observability contract for scheduling runs.
// Implementations live in infra/metrics.
package metrics

import "time"

// SessionRecord represents one placed session to be recorded.
type SessionRecord struct {
	RunID     string
	Program   string
	Section   string
	Course    string
	Faculty   string
	Room      string
	Day       string
	StartSlot int
	EndSlot   int
	Time      time.Time
}

// RunSummary captures one scheduling run.
type RunSummary struct {
	RunID    string
	Requests int
	Sessions int
	Skipped  int
	Elapsed  time.Duration
	Time     time.Time
}

// Sink records placed sessions for observability purposes.
type Sink interface {
	RecordSessions(recs []SessionRecord) error
}

// RunRecorder records per-run summaries. Sinks implement it when the backend
// has a sensible representation for run-level data.
type RunRecorder interface {
	RecordRun(sum RunSummary) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordSessions([]SessionRecord) error { return nil }
func (NopSink) RecordRun(RunSummary) error           { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}
