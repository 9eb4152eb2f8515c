package model

import (
	"fmt"

	"github.com/vicharak-in/tlinker/core/table"
)

// Constructors from tabular rows. The rows are expected to have their JSON
// columns already decoded (table.DecodeJSONColumns); numeric cells may still
// be strings when the source was CSV.

func StudentFromRow(r table.Row) (Student, error) {
	var s Student
	var err error
	if s.ID, err = table.Int(r, "id"); err != nil {
		return s, err
	}
	if s.Name, err = table.String(r, "name"); err != nil {
		return s, err
	}
	if s.Program, err = table.String(r, "program"); err != nil {
		return s, err
	}
	if s.Semester, err = table.Int(r, "semester"); err != nil {
		return s, err
	}
	if s.ChosenCourses, err = table.Strings(r, "chosen_courses"); err != nil {
		return s, err
	}
	if s.CreditsTarget, err = table.Int(r, "credits_target"); err != nil {
		return s, err
	}
	return s, nil
}

func FacultyFromRow(r table.Row) (Faculty, error) {
	var f Faculty
	var err error
	if f.ID, err = table.Int(r, "id"); err != nil {
		return f, err
	}
	if f.Name, err = table.String(r, "name"); err != nil {
		return f, err
	}
	if f.Skills, err = table.Strings(r, "skills"); err != nil {
		return f, err
	}
	if f.Availability, err = table.Strings(r, "availability"); err != nil {
		return f, err
	}
	if f.MaxLoad, err = table.Int(r, "max_load"); err != nil {
		return f, err
	}
	return f, nil
}

func CourseFromRow(r table.Row) (Course, error) {
	var c Course
	var err error
	if c.Code, err = table.String(r, "code"); err != nil {
		return c, err
	}
	if c.Name, err = table.String(r, "name"); err != nil {
		return c, err
	}
	if c.Type, err = table.String(r, "type"); err != nil {
		return c, err
	}
	if c.Credits, err = table.Int(r, "credits"); err != nil {
		return c, err
	}
	if c.TheoryHours, err = table.Int(r, "T_hours"); err != nil {
		return c, err
	}
	if c.PracticalHours, err = table.Int(r, "P_hours"); err != nil {
		return c, err
	}
	if c.Program, err = table.String(r, "program"); err != nil {
		return c, err
	}
	if c.Semester, err = table.Int(r, "semester"); err != nil {
		return c, err
	}
	if c.Section, err = table.String(r, "section"); err != nil {
		return c, err
	}
	if c.DurationSlots, err = table.Int(r, "duration_slots"); err != nil {
		return c, err
	}
	if c.RoomType, err = table.String(r, "room_type"); err != nil {
		return c, err
	}
	if c.AllowedDays, err = table.Ints(r, "allowed_days"); err != nil {
		return c, err
	}
	if c.AllowedStartSlots, err = table.Ints(r, "allowed_start_slots"); err != nil {
		return c, err
	}
	if c.FacultyPool, err = table.Ints(r, "faculty_pool"); err != nil {
		return c, err
	}
	return c, nil
}

func RoomFromRow(r table.Row) (Room, error) {
	var rm Room
	var err error
	if rm.ID, err = table.Int(r, "id"); err != nil {
		return rm, err
	}
	if rm.Name, err = table.String(r, "name"); err != nil {
		return rm, err
	}
	if rm.Capacity, err = table.Int(r, "capacity"); err != nil {
		return rm, err
	}
	if rm.Type, err = table.String(r, "type"); err != nil {
		return rm, err
	}
	if rm.Availability, err = table.Strings(r, "availability"); err != nil {
		return rm, err
	}
	return rm, nil
}

func SelectionFromRow(r table.Row) (Selection, error) {
	var sel Selection
	var err error
	if sel.StudentID, err = table.Int(r, "student_id"); err != nil {
		return sel, err
	}
	if sel.CourseCode, err = table.String(r, "course_code"); err != nil {
		return sel, err
	}
	if sel.Section, err = table.String(r, "section"); err != nil {
		return sel, err
	}
	if sel.Section == "" {
		sel.Section = "A"
	}
	if sel.FacultyID, err = table.Int(r, "faculty_id"); err != nil {
		return sel, err
	}
	return sel, nil
}

// Collection constructors.

func StudentsFromTable(t *table.Table) ([]Student, error) {
	out := make([]Student, 0, t.Len())
	for i, r := range t.Rows {
		s, err := StudentFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("students row %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func FacultiesFromTable(t *table.Table) ([]Faculty, error) {
	out := make([]Faculty, 0, t.Len())
	for i, r := range t.Rows {
		f, err := FacultyFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("faculty row %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func CoursesFromTable(t *table.Table) ([]Course, error) {
	out := make([]Course, 0, t.Len())
	for i, r := range t.Rows {
		c, err := CourseFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("courses row %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func RoomsFromTable(t *table.Table) ([]Room, error) {
	out := make([]Room, 0, t.Len())
	for i, r := range t.Rows {
		rm, err := RoomFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("rooms row %d: %w", i, err)
		}
		out = append(out, rm)
	}
	return out, nil
}

// Tabular forms for CSV export. List fields stay structured; callers encode
// them with table.EncodeJSONColumns before writing delimited text.

var (
	StudentColumns = []string{"id", "name", "program", "semester", "chosen_courses", "credits_target"}
	FacultyColumns = []string{"id", "name", "skills", "availability", "max_load"}
	CourseColumns  = []string{
		"code", "name", "type", "credits", "T_hours", "P_hours", "program",
		"semester", "section", "duration_slots", "room_type", "allowed_days",
		"allowed_start_slots", "faculty_pool",
	}
	RoomColumns = []string{"id", "name", "capacity", "type", "availability"}
)

func StudentsTable(students []Student) *table.Table {
	t := table.New(StudentColumns...)
	for _, s := range students {
		t.Append(table.Row{
			"id": s.ID, "name": s.Name, "program": s.Program,
			"semester": s.Semester, "chosen_courses": s.ChosenCourses,
			"credits_target": s.CreditsTarget,
		})
	}
	return t
}

func FacultiesTable(faculty []Faculty) *table.Table {
	t := table.New(FacultyColumns...)
	for _, f := range faculty {
		t.Append(table.Row{
			"id": f.ID, "name": f.Name, "skills": f.Skills,
			"availability": f.Availability, "max_load": f.MaxLoad,
		})
	}
	return t
}

func CoursesTable(courses []Course) *table.Table {
	t := table.New(CourseColumns...)
	for _, c := range courses {
		t.Append(table.Row{
			"code": c.Code, "name": c.Name, "type": c.Type, "credits": c.Credits,
			"T_hours": c.TheoryHours, "P_hours": c.PracticalHours,
			"program": c.Program, "semester": c.Semester, "section": c.Section,
			"duration_slots": c.DurationSlots, "room_type": c.RoomType,
			"allowed_days": c.AllowedDays, "allowed_start_slots": c.AllowedStartSlots,
			"faculty_pool": c.FacultyPool,
		})
	}
	return t
}

func RoomsTable(rooms []Room) *table.Table {
	t := table.New(RoomColumns...)
	for _, r := range rooms {
		t.Append(table.Row{
			"id": r.ID, "name": r.Name, "capacity": r.Capacity,
			"type": r.Type, "availability": r.Availability,
		})
	}
	return t
}
