package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/vicharak-in/tlinker/core/model"
)

func TestJSONLStoreAppendQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")
	store, err := NewJSONLStore(path, 1, 1, 1)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}()

	now := time.Now().UTC().Truncate(time.Second)
	recs := []Record{
		{Timestamp: now.Add(-time.Hour), RunID: "old", Requests: 1, Sessions: []model.ScheduledSession{
			{Program: "Electronics", Course: "Digital Electronics", Day: "Mon"},
		}},
		{Timestamp: now, RunID: "new", Requests: 2, Skipped: []string{"NOPE"}, Sessions: []model.ScheduledSession{
			{Program: "Computer Science", Course: "Algorithms", Day: "Tue"},
		}},
	}
	ctx := context.Background()
	for _, r := range recs {
		if err := store.Append(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := store.Query(ctx, Query{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 records, got %d", len(all))
	}

	recent, err := store.Query(ctx, Query{Start: now.Add(-time.Minute)})
	if err != nil {
		t.Fatalf("query start: %v", err)
	}
	if len(recent) != 1 || recent[0].RunID != "new" {
		t.Fatalf("time filter: %#v", recent)
	}

	byID, err := store.Query(ctx, Query{RunID: "old"})
	if err != nil {
		t.Fatalf("query id: %v", err)
	}
	if len(byID) != 1 || byID[0].Sessions[0].Course != "Digital Electronics" {
		t.Fatalf("id filter: %#v", byID)
	}

	byProgram, err := store.Query(ctx, Query{Program: "Computer Science"})
	if err != nil {
		t.Fatalf("query program: %v", err)
	}
	if len(byProgram) != 1 || byProgram[0].RunID != "new" {
		t.Fatalf("program filter: %#v", byProgram)
	}
	if len(byProgram[0].Skipped) != 1 || byProgram[0].Skipped[0] != "NOPE" {
		t.Fatalf("skipped not round-tripped: %#v", byProgram[0])
	}
}
