// Package catalog builds the lookup structures the scheduling engine resolves
// rooms, faculty and courses against. The index is a pure function of the base
// collections and is rebuilt for every run; callers may mutate the collections
// between runs.
package catalog

import "github.com/vicharak-in/tlinker/core/model"

// Index holds the per-run lookup maps.
type Index struct {
	CourseByCode map[string]model.Course
	RoomByID     map[int]model.Room
	FacultyByID  map[int]model.Faculty
	// RoomsByType preserves catalog order; duplicate ids in the source
	// collection stay duplicated here.
	RoomsByType map[string][]model.Room
}

// Build constructs the index from the base collections.
func Build(courses []model.Course, rooms []model.Room, faculty []model.Faculty) *Index {
	idx := &Index{
		CourseByCode: make(map[string]model.Course, len(courses)),
		RoomByID:     make(map[int]model.Room, len(rooms)),
		FacultyByID:  make(map[int]model.Faculty, len(faculty)),
		RoomsByType:  make(map[string][]model.Room),
	}
	for _, c := range courses {
		idx.CourseByCode[c.Code] = c
	}
	for _, r := range rooms {
		idx.RoomByID[r.ID] = r
		idx.RoomsByType[r.Type] = append(idx.RoomsByType[r.Type], r)
	}
	for _, f := range faculty {
		idx.FacultyByID[f.ID] = f
	}
	return idx
}
