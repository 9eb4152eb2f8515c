// Package dataset holds the mutable application state: the four input
// datasets in tabular form, the constraint grid and the pending course
// selections. A Store is safe for concurrent use by the HTTP handlers.
package dataset

import (
	"fmt"
	"sync"

	"github.com/vicharak-in/tlinker/core/model"
	"github.com/vicharak-in/tlinker/core/schedule"
	"github.com/vicharak-in/tlinker/core/table"
)

// Kind names one of the four input datasets.
type Kind string

const (
	KindStudents Kind = "students"
	KindFaculty  Kind = "faculty"
	KindCourses  Kind = "courses"
	KindRooms    Kind = "rooms"
)

// Kinds returns all dataset kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{KindStudents, KindFaculty, KindCourses, KindRooms}
}

// ParseKind maps a URL path segment to a dataset kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStudents, KindFaculty, KindCourses, KindRooms:
		return Kind(s), nil
	}
	return "", fmt.Errorf("invalid data type %q", s)
}

// JSONColumns returns the columns of the kind that carry JSON-encoded lists
// in delimited files.
func JSONColumns(k Kind) []string {
	switch k {
	case KindStudents:
		return model.StudentJSONColumns
	case KindFaculty:
		return model.FacultyJSONColumns
	case KindCourses:
		return model.CourseJSONColumns
	case KindRooms:
		return model.RoomJSONColumns
	}
	return nil
}

// Store is the in-memory dataset registry shared by the API handlers and
// the scheduling service.
type Store struct {
	mu          sync.RWMutex
	tables      map[Kind]*table.Table
	constraints model.Constraints
	selections  []model.Selection
}

func NewStore() *Store {
	return &Store{tables: make(map[Kind]*table.Table)}
}

// Replace swaps the dataset wholesale. JSON-encoded string cells are decoded
// before the table is stored, so callers may hand over raw CSV rows.
func (s *Store) Replace(k Kind, t *table.Table) error {
	decoded, err := table.DecodeJSONColumns(t, JSONColumns(k))
	if err != nil {
		return fmt.Errorf("%s: %w", k, err)
	}
	s.mu.Lock()
	s.tables[k] = decoded
	s.mu.Unlock()
	return nil
}

// Table returns a copy of the stored dataset, or false when it was never
// loaded.
func (s *Store) Table(k Kind) (*table.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[k]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// AppendRow grows the dataset by one row: a template row when the dataset is
// empty, otherwise a clone of the last row with a fresh id and a placeholder
// name. Courses get a fresh NEW<n> code instead of an id.
func (s *Store) AppendRow(k Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[k]
	if !ok {
		t = table.New(columns(k)...)
		s.tables[k] = t
	}
	if t.Len() == 0 {
		t.Append(templateRow(k))
		return
	}

	last := t.Rows[t.Len()-1]
	row := make(table.Row, len(last))
	for col, v := range last {
		row[col] = v
	}
	switch k {
	case KindStudents:
		row["id"] = maxID(t) + 1
		row["name"] = "New Student"
	case KindFaculty:
		row["id"] = maxID(t) + 1
		row["name"] = "New Faculty"
	case KindCourses:
		row["code"] = fmt.Sprintf("NEW%d", t.Len()+101)
		row["name"] = "New Course"
	case KindRooms:
		row["id"] = maxID(t) + 1
		row["name"] = "New Room"
	}
	t.Append(row)
}

// RemoveRow drops the row at idx from the dataset.
func (s *Store) RemoveRow(k Kind, idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[k]
	if !ok || idx < 0 || idx >= t.Len() {
		return fmt.Errorf("invalid row index %d", idx)
	}
	t.Rows = append(t.Rows[:idx], t.Rows[idx+1:]...)
	return nil
}

func maxID(t *table.Table) int {
	top := 0
	for _, r := range t.Rows {
		if id, err := table.Int(r, "id"); err == nil && id > top {
			top = id
		}
	}
	return top
}

func columns(k Kind) []string {
	switch k {
	case KindStudents:
		return model.StudentColumns
	case KindFaculty:
		return model.FacultyColumns
	case KindCourses:
		return model.CourseColumns
	case KindRooms:
		return model.RoomColumns
	}
	return nil
}

// templateRow is the starter row AppendRow uses for an empty dataset.
func templateRow(k Kind) table.Row {
	switch k {
	case KindStudents:
		return table.Row{
			"id": 1, "name": "New Student", "program": "Computer Science",
			"semester": 1, "chosen_courses": []string{}, "credits_target": 16,
		}
	case KindFaculty:
		return table.Row{
			"id": 1, "name": "New Faculty", "skills": []string{},
			"availability": []string{}, "max_load": 30,
		}
	case KindCourses:
		return table.Row{
			"code": "NEW101", "name": "New Course", "type": "Major", "credits": 3,
			"T_hours": 2, "P_hours": 1, "program": "Computer Science", "semester": 1,
			"section": "A", "duration_slots": 4, "room_type": "Classroom",
			"allowed_days": []int{0, 1, 2, 3, 4}, "allowed_start_slots": []int{1, 3, 5, 7},
			"faculty_pool": []int{},
		}
	case KindRooms:
		return table.Row{
			"id": 1, "name": "New Room", "capacity": 30, "type": "Classroom",
			"availability": []string{"Mon:1-16", "Tue:1-16", "Wed:1-16", "Thu:1-16", "Fri:1-16"},
		}
	}
	return table.Row{}
}

func (s *Store) SetConstraints(c model.Constraints) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.constraints = c
	s.mu.Unlock()
	return nil
}

func (s *Store) Constraints() model.Constraints {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.constraints
}

// AddSelection appends one course selection. An empty section defaults
// to "A".
func (s *Store) AddSelection(sel model.Selection) {
	if sel.Section == "" {
		sel.Section = "A"
	}
	s.mu.Lock()
	s.selections = append(s.selections, sel)
	s.mu.Unlock()
}

func (s *Store) ClearSelections() {
	s.mu.Lock()
	s.selections = nil
	s.mu.Unlock()
}

func (s *Store) Selections() []model.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// Missing lists the empty datasets in the order the generate endpoint
// reports them.
func (s *Store) Missing() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var missing []string
	for _, k := range []Kind{KindStudents, KindCourses, KindRooms, KindFaculty} {
		if t, ok := s.tables[k]; !ok || t.Len() == 0 {
			missing = append(missing, string(k))
		}
	}
	return missing
}

// Snapshot converts the stored tables into the typed input of one
// scheduling run. Rows that do not fit the record schema fail the snapshot.
func (s *Store) Snapshot() (schedule.Input, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var in schedule.Input
	var err error
	if in.Students, err = model.StudentsFromTable(s.loaded(KindStudents)); err != nil {
		return schedule.Input{}, err
	}
	if in.Faculty, err = model.FacultiesFromTable(s.loaded(KindFaculty)); err != nil {
		return schedule.Input{}, err
	}
	if in.Courses, err = model.CoursesFromTable(s.loaded(KindCourses)); err != nil {
		return schedule.Input{}, err
	}
	if in.Rooms, err = model.RoomsFromTable(s.loaded(KindRooms)); err != nil {
		return schedule.Input{}, err
	}
	in.Constraints = s.constraints
	in.Selections = make([]model.Selection, len(s.selections))
	copy(in.Selections, s.selections)
	return in, nil
}

// loaded returns the stored table or an empty one. Callers hold s.mu.
func (s *Store) loaded(k Kind) *table.Table {
	if t, ok := s.tables[k]; ok {
		return t
	}
	return table.New()
}
