// Package runlog persists the outcome of scheduling runs so operators can
// audit what was generated and when.
package runlog

import (
	"context"
	"time"

	"github.com/vicharak-in/tlinker/core/model"
)

// Record captures one scheduling run.
type Record struct {
	Timestamp time.Time                `json:"timestamp"`
	RunID     string                   `json:"run_id"`
	Requests  int                      `json:"requests"`
	Skipped   []string                 `json:"skipped,omitempty"`
	Sessions  []model.ScheduledSession `json:"sessions"`
}

// Query defines filters for retrieving records. Zero-valued fields match
// everything.
type Query struct {
	Start   time.Time
	End     time.Time
	RunID   string
	Program string
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// NopStore discards records and returns no results.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error          { return nil }
func (NopStore) Query(context.Context, Query) ([]Record, error) { return nil, nil }
func (NopStore) Close() error                                  { return nil }
