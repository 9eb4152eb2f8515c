package metrics

import coremetrics "github.com/vicharak-in/tlinker/core/metrics"

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSessions forwards the records to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordSessions(recs []coremetrics.SessionRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordSessions(recs); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun forwards run summaries to sinks that support them.
func (m *MultiSink) RecordRun(sum coremetrics.RunSummary) error {
	for _, s := range m.Sinks {
		if rr, ok := s.(coremetrics.RunRecorder); ok {
			if err := rr.RecordRun(sum); err != nil {
				return err
			}
		}
	}
	return nil
}
