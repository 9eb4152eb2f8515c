// Package schedule exposes timetable generation, export and reporting over
// HTTP.
package schedule

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/vicharak-in/tlinker/core/logger"
	"github.com/vicharak-in/tlinker/core/runlog"
	"github.com/vicharak-in/tlinker/core/schedule"
	"github.com/vicharak-in/tlinker/internal/dataset"
	"github.com/vicharak-in/tlinker/pkg/export"
	"github.com/vicharak-in/tlinker/pkg/report"
)

// Generator runs one scheduling pass over a dataset snapshot.
type Generator interface {
	Generate(in schedule.Input) (*schedule.Result, error)
}

// Handler serves the generate, export and report endpoints. It remembers the
// most recent result so exports operate on the last generated timetable.
type Handler struct {
	store  *dataset.Store
	gen    Generator
	runs   runlog.Store
	log    logger.Logger
	mu     sync.RWMutex
	last   *schedule.Result
	lastIn schedule.Input
}

func NewHandler(store *dataset.Store, gen Generator, runs runlog.Store, log logger.Logger) *Handler {
	if runs == nil {
		runs = runlog.NopStore{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Handler{store: store, gen: gen, runs: runs, log: log}
}

// Generate serves POST /api/generate.
func (h *Handler) Generate() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		if len(h.store.Selections()) == 0 {
			writeError(w, http.StatusBadRequest,
				"No course selections found. Please add some course selections first.")
			return
		}
		if missing := h.store.Missing(); len(missing) > 0 {
			writeError(w, http.StatusBadRequest,
				"Required datasets not loaded: "+strings.Join(missing, ", ")+". Please load the data files first.")
			return
		}

		in, err := h.store.Snapshot()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		res, err := h.gen.Generate(in)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error generating timetable: "+err.Error())
			return
		}

		h.mu.Lock()
		h.last = res
		h.lastIn = in
		h.mu.Unlock()

		rec := runlog.Record{
			Timestamp: res.GeneratedAt,
			RunID:     res.RunID,
			Requests:  res.Requests,
			Skipped:   res.Skipped,
			Sessions:  res.Sessions,
		}
		if err := h.runs.Append(r.Context(), rec); err != nil {
			h.log.Errorf("append run log: %v", err)
		}

		writeJSON(w, map[string]any{
			"success":   true,
			"run_id":    res.RunID,
			"timetable": res.Sessions,
			"skipped":   res.Skipped,
		})
	})
}

// Export serves GET /api/export/<format> for csv, excel, json and ics.
func (h *Handler) Export() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.mu.RLock()
		res := h.last
		in := h.lastIn
		h.mu.RUnlock()
		if res == nil || len(res.Sessions) == 0 {
			writeError(w, http.StatusBadRequest, "No timetable to export")
			return
		}

		format := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		switch format {
		case "csv":
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename="timetable.csv"`)
			if err := export.WriteCSV(w, res.Sessions); err != nil {
				h.log.Errorf("export csv: %v", err)
			}
		case "excel", "xlsx":
			w.Header().Set("Content-Type",
				"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Header().Set("Content-Disposition", `attachment; filename="timetable.xlsx"`)
			if err := export.WriteXLSX(w, res.Sessions); err != nil {
				h.log.Errorf("export xlsx: %v", err)
			}
		case "json":
			w.Header().Set("Content-Type", "application/json")
			if err := export.WriteJSON(w, res.Sessions); err != nil {
				h.log.Errorf("export json: %v", err)
			}
		case "ics":
			weekStart, err := weekStartParam(r)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			w.Header().Set("Content-Type", "text/calendar")
			w.Header().Set("Content-Disposition", `attachment; filename="timetable.ics"`)
			if err := export.WriteICS(w, res.Sessions, in.Constraints, weekStart); err != nil {
				h.log.Errorf("export ics: %v", err)
			}
		default:
			writeError(w, http.StatusBadRequest, "Invalid format")
		}
	})
}

// Timetable serves GET /api/timetable, the sessions of the last run.
func (h *Handler) Timetable() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		res := h.Last()
		if res == nil {
			writeError(w, http.StatusBadRequest, "No timetable generated yet")
			return
		}
		writeJSON(w, res)
	})
}

// Report serves GET /api/report, a per-day load summary of the last run.
func (h *Handler) Report() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.mu.RLock()
		res := h.last
		in := h.lastIn
		h.mu.RUnlock()
		if res == nil {
			writeError(w, http.StatusBadRequest, "No timetable generated yet")
			return
		}
		sum, err := report.Build(res.Sessions, in.Constraints)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, sum)
	})
}

// Last returns the most recent result, or nil when none was generated.
func (h *Handler) Last() *schedule.Result {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}

// weekStartParam parses the optional week_start query parameter. The default
// is the Monday on or after today.
func weekStartParam(r *http.Request) (time.Time, error) {
	if s := r.URL.Query().Get("week_start"); s != "" {
		return time.Parse("2006-01-02", s)
	}
	now := time.Now().UTC().Truncate(24 * time.Hour)
	for now.Weekday() != time.Monday {
		now = now.Add(24 * time.Hour)
	}
	return now, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
