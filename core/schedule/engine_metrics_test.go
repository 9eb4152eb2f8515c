package schedule

import (
	"testing"

	"github.com/vicharak-in/tlinker/core/metrics"
)

type captureSink struct {
	sessions []metrics.SessionRecord
	runs     []metrics.RunSummary
}

func (c *captureSink) RecordSessions(recs []metrics.SessionRecord) error {
	c.sessions = append(c.sessions, recs...)
	return nil
}

func (c *captureSink) RecordRun(sum metrics.RunSummary) error {
	c.runs = append(c.runs, sum)
	return nil
}

func TestGenerateRecordsMetrics(t *testing.T) {
	sink := &captureSink{}
	res, err := New(nil, sink).Generate(twoDayInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(sink.sessions) != 2 {
		t.Fatalf("want 2 session records, got %d", len(sink.sessions))
	}
	if sink.sessions[0].RunID != res.RunID {
		t.Fatalf("records must carry the run id")
	}
	if len(sink.runs) != 1 || sink.runs[0].Sessions != 2 || sink.runs[0].Requests != 2 {
		t.Fatalf("run summary: %+v", sink.runs)
	}
}

func TestGenerateFreshRunID(t *testing.T) {
	e := New(nil, nil)
	r1, _ := e.Generate(twoDayInput())
	r2, _ := e.Generate(twoDayInput())
	if r1.RunID == r2.RunID {
		t.Fatalf("run ids must be unique per invocation")
	}
}
