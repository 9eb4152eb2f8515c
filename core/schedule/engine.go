package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vicharak-in/tlinker/core/catalog"
	"github.com/vicharak-in/tlinker/core/logger"
	"github.com/vicharak-in/tlinker/core/metrics"
	"github.com/vicharak-in/tlinker/core/model"
	"github.com/vicharak-in/tlinker/core/timegrid"
)

// Resource errors are fatal for a run. A selection naming an unknown course
// code is not an error; it is skipped and reported in Result.Skipped.
var (
	ErrNoRooms        = errors.New("no rooms available")
	ErrNoFaculty      = errors.New("no faculty available")
	ErrUnknownFaculty = errors.New("faculty pool references unknown faculty")
)

// Input is the full in-memory snapshot one run operates on. The engine treats
// it as read-only and exclusive for the duration of the call.
type Input struct {
	Students    []model.Student
	Faculty     []model.Faculty
	Courses     []model.Course
	Rooms       []model.Room
	Constraints model.Constraints
	// Selections drive the request list. When empty, every catalog course
	// is scheduled instead.
	Selections []model.Selection
}

// Result is the output of one run. Sessions are in request order.
type Result struct {
	RunID       string                   `json:"run_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Elapsed     time.Duration            `json:"elapsed"`
	Requests    int                      `json:"requests"`
	Sessions    []model.ScheduledSession `json:"sessions"`
	// Skipped lists selection course codes absent from the catalog, in
	// input order.
	Skipped []string `json:"skipped,omitempty"`
}

// Engine generates timetables. It holds no per-run state; Generate may be
// called repeatedly and concurrently as long as callers do not share mutable
// input collections.
type Engine struct {
	log  logger.Logger
	sink metrics.Sink
}

// New creates an Engine. Nil arguments default to no-op implementations.
func New(log logger.Logger, sink metrics.Sink) *Engine {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{log: log, sink: sink}
}

// request is one course section to place.
type request struct {
	studentID int
	section   string
	course    model.Course
}

// Generate runs the placement pass and returns one session per accepted
// request. Missing rooms or faculty surface as errors naming the offending
// course; the caller is expected to have checked the empty-input
// preconditions beforehand.
func (e *Engine) Generate(in Input) (*Result, error) {
	if err := in.Constraints.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	days := in.Constraints.Days
	slotsPerDay := in.Constraints.SlotsPerDay
	idx := catalog.Build(in.Courses, in.Rooms, in.Faculty)

	res := &Result{RunID: uuid.NewString(), GeneratedAt: start}
	requests := e.buildRequests(in, idx, res)
	res.Requests = len(requests)
	e.log.Infof("scheduling %d course sections on a %dx%d grid", len(requests), len(days), slotsPerDay)

	currentSlot := 0
	for _, req := range requests {
		dayIdx := currentSlot / slotsPerDay
		slotInDay := currentSlot % slotsPerDay
		// Day overflow wraps to day 0 and discards the accumulated day
		// count, reusing slots from the top of the grid.
		if dayIdx >= len(days) {
			dayIdx = 0
			currentSlot = slotInDay
		}

		room, err := resolveRoom(req.course, idx, in.Rooms)
		if err != nil {
			return nil, err
		}
		fac, err := resolveFaculty(req.course, idx, in.Faculty)
		if err != nil {
			return nil, err
		}

		duration := req.course.DurationSlots
		endSlot := (currentSlot + duration - 1) % slotsPerDay
		res.Sessions = append(res.Sessions, model.ScheduledSession{
			Program:   req.course.Program,
			Section:   req.section,
			Course:    req.course.Name,
			Faculty:   fac.Name,
			Room:      room.Name,
			Day:       days[dayIdx],
			Start:     slotInDay,
			End:       endSlot,
			StartTime: timegrid.Clock(slotInDay),
			EndTime:   timegrid.Clock(endSlot),
		})

		// one free slot between consecutive placements
		currentSlot += duration + 1
	}

	res.Elapsed = time.Since(start)
	e.record(res)
	return res, nil
}

// buildRequests turns selections into requests, silently dropping unknown
// course codes. Without selections, every catalog course becomes a request.
func (e *Engine) buildRequests(in Input, idx *catalog.Index, res *Result) []request {
	if len(in.Selections) > 0 {
		reqs := make([]request, 0, len(in.Selections))
		for _, sel := range in.Selections {
			course, ok := idx.CourseByCode[sel.CourseCode]
			if !ok {
				e.log.Warnf("selection for unknown course %q skipped", sel.CourseCode)
				res.Skipped = append(res.Skipped, sel.CourseCode)
				continue
			}
			section := sel.Section
			if section == "" {
				section = "A"
			}
			reqs = append(reqs, request{studentID: sel.StudentID, section: section, course: course})
		}
		return reqs
	}
	reqs := make([]request, 0, len(in.Courses))
	for _, c := range in.Courses {
		reqs = append(reqs, request{section: c.Section, course: c})
	}
	return reqs
}

// resolveRoom picks the first room of the required type in catalog order,
// falling back to the first room overall.
func resolveRoom(course model.Course, idx *catalog.Index, rooms []model.Room) (model.Room, error) {
	if typed := idx.RoomsByType[course.RoomType]; len(typed) > 0 {
		return typed[0], nil
	}
	if len(rooms) == 0 {
		return model.Room{}, fmt.Errorf("course %s: %w", course.Code, ErrNoRooms)
	}
	return rooms[0], nil
}

// resolveFaculty picks the first pool member, falling back to the first
// faculty record overall. A pool entry without a matching record is fatal.
func resolveFaculty(course model.Course, idx *catalog.Index, faculty []model.Faculty) (model.Faculty, error) {
	if len(course.FacultyPool) > 0 {
		id := course.FacultyPool[0]
		f, ok := idx.FacultyByID[id]
		if !ok {
			return model.Faculty{}, fmt.Errorf("course %s: %w: id %d", course.Code, ErrUnknownFaculty, id)
		}
		return f, nil
	}
	if len(faculty) == 0 {
		return model.Faculty{}, fmt.Errorf("course %s: %w", course.Code, ErrNoFaculty)
	}
	return faculty[0], nil
}

// record forwards the run to the metrics sink. Sink failures are logged, not
// propagated; observability must never fail a run.
func (e *Engine) record(res *Result) {
	recs := make([]metrics.SessionRecord, 0, len(res.Sessions))
	for _, s := range res.Sessions {
		recs = append(recs, metrics.SessionRecord{
			RunID:     res.RunID,
			Program:   s.Program,
			Section:   s.Section,
			Course:    s.Course,
			Faculty:   s.Faculty,
			Room:      s.Room,
			Day:       s.Day,
			StartSlot: s.Start,
			EndSlot:   s.End,
			Time:      res.GeneratedAt,
		})
	}
	if err := e.sink.RecordSessions(recs); err != nil {
		e.log.Errorf("metrics error: %v", err)
	}
	if rr, ok := e.sink.(metrics.RunRecorder); ok {
		sum := metrics.RunSummary{
			RunID:    res.RunID,
			Requests: res.Requests,
			Sessions: len(res.Sessions),
			Skipped:  len(res.Skipped),
			Elapsed:  res.Elapsed,
			Time:     res.GeneratedAt,
		}
		if err := rr.RecordRun(sum); err != nil {
			e.log.Errorf("run metrics error: %v", err)
		}
	}
}
