// Package model defines the academic records consumed by the scheduling
// engine: students, faculty, courses, rooms, the day/slot constraint set,
// course selections and the scheduled sessions the engine emits.
package model

import (
	"fmt"

	"github.com/vicharak-in/tlinker/core/table"
)

// JSON columns per dataset, the convention used by the CSV files and the
// upload endpoints.
var (
	StudentJSONColumns = []string{"chosen_courses"}
	FacultyJSONColumns = []string{"skills", "availability"}
	CourseJSONColumns  = []string{"allowed_days", "allowed_start_slots", "faculty_pool"}
	RoomJSONColumns    = []string{"availability"}
)

// Student is a read-only input record. ChosenCourses and CreditsTarget are
// carried for the callers; the engine does not consult them.
type Student struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Program       string   `json:"program"`
	Semester      int      `json:"semester"`
	ChosenCourses []string `json:"chosen_courses"`
	CreditsTarget int      `json:"credits_target"`
}

// Faculty is a teaching staff record. Availability and MaxLoad are declared
// in the schema but not enforced by the placement algorithm.
type Faculty struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Skills       []string `json:"skills"`
	Availability []string `json:"availability"`
	MaxLoad      int      `json:"max_load"`
}

// Course is a catalog entry keyed by Code. AllowedDays and AllowedStartSlots
// are declared but not enforced; FacultyPool ordering matters only through
// the first-eligible rule.
type Course struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Credits           int    `json:"credits"`
	TheoryHours       int    `json:"T_hours"`
	PracticalHours    int    `json:"P_hours"`
	Program           string `json:"program"`
	Semester          int    `json:"semester"`
	Section           string `json:"section"`
	DurationSlots     int    `json:"duration_slots"`
	RoomType          string `json:"room_type"`
	AllowedDays       []int  `json:"allowed_days"`
	AllowedStartSlots []int  `json:"allowed_start_slots"`
	FacultyPool       []int  `json:"faculty_pool"`
}

// Room is a schedulable space. Availability is declared but not enforced.
type Room struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Capacity     int      `json:"capacity"`
	Type         string   `json:"type"`
	Availability []string `json:"availability"`
}

// Constraints defines the scheduling grid for one run.
type Constraints struct {
	Days        []string `json:"days"`
	SlotsPerDay int      `json:"slots_per_day"`
}

// Validate checks that the constraint set describes a usable grid.
func (c Constraints) Validate() error {
	if len(c.Days) == 0 {
		return fmt.Errorf("constraints: days must not be empty")
	}
	if c.SlotsPerDay <= 0 {
		return fmt.Errorf("constraints: slots_per_day must be positive")
	}
	return nil
}

// GridSize returns the total number of slots in the grid.
func (c Constraints) GridSize() int { return len(c.Days) * c.SlotsPerDay }

// Selection is one request to place a course section. FacultyID is optional
// (zero means unset) and is recorded but not consulted by placement.
type Selection struct {
	StudentID  int    `json:"student_id"`
	CourseCode string `json:"course_code"`
	Section    string `json:"section"`
	FacultyID  int    `json:"faculty_id,omitempty"`
}

// ScheduledSession is one placed course section, the engine's output unit.
// Start and End are zero-based slot indices within the day; End may wrap
// below Start when a session crosses the day boundary.
type ScheduledSession struct {
	Program   string `json:"program"`
	Section   string `json:"section"`
	Course    string `json:"course"`
	Faculty   string `json:"faculty"`
	Room      string `json:"room"`
	Day       string `json:"day"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SessionColumns is the column order used when sessions are exported in
// tabular form.
var SessionColumns = []string{
	"program", "section", "course", "faculty", "room",
	"day", "start", "end", "start_time", "end_time",
}

// Row converts the session to its tabular form.
func (s ScheduledSession) Row() table.Row {
	return table.Row{
		"program":    s.Program,
		"section":    s.Section,
		"course":     s.Course,
		"faculty":    s.Faculty,
		"room":       s.Room,
		"day":        s.Day,
		"start":      s.Start,
		"end":        s.End,
		"start_time": s.StartTime,
		"end_time":   s.EndTime,
	}
}

// SessionsTable converts a result list to a table ready for export.
func SessionsTable(sessions []ScheduledSession) *table.Table {
	t := table.New(SessionColumns...)
	for _, s := range sessions {
		t.Append(s.Row())
	}
	return t
}
