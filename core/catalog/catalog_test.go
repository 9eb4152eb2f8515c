package catalog

import (
	"testing"

	"github.com/vicharak-in/tlinker/core/model"
)

func TestBuild(t *testing.T) {
	courses := []model.Course{
		{Code: "CS301", Name: "Data Structures"},
		{Code: "MATH201", Name: "Calculus III"},
	}
	rooms := []model.Room{
		{ID: 1, Name: "Lecture Hall A", Type: "Lecture Hall"},
		{ID: 3, Name: "Computer Lab 1", Type: "Computer Lab"},
		{ID: 2, Name: "Lecture Hall B", Type: "Lecture Hall"},
	}
	faculty := []model.Faculty{{ID: 1, Name: "Dr. Smith"}, {ID: 2, Name: "Prof. Johnson"}}

	idx := Build(courses, rooms, faculty)
	if idx.CourseByCode["CS301"].Name != "Data Structures" {
		t.Fatalf("course index: %#v", idx.CourseByCode)
	}
	if idx.RoomByID[3].Name != "Computer Lab 1" {
		t.Fatalf("room index: %#v", idx.RoomByID)
	}
	if idx.FacultyByID[2].Name != "Prof. Johnson" {
		t.Fatalf("faculty index: %#v", idx.FacultyByID)
	}
	halls := idx.RoomsByType["Lecture Hall"]
	if len(halls) != 2 || halls[0].ID != 1 || halls[1].ID != 2 {
		t.Fatalf("rooms by type must preserve catalog order: %#v", halls)
	}
}

func TestBuildKeepsDuplicates(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Name: "Lab", Type: "Lab"},
		{ID: 1, Name: "Lab copy", Type: "Lab"},
	}
	idx := Build(nil, rooms, nil)
	if len(idx.RoomsByType["Lab"]) != 2 {
		t.Fatalf("duplicates must be kept: %#v", idx.RoomsByType["Lab"])
	}
	// the id map keeps the last record, matching map overwrite semantics
	if idx.RoomByID[1].Name != "Lab copy" {
		t.Fatalf("room by id: %#v", idx.RoomByID[1])
	}
}

func TestBuildEmpty(t *testing.T) {
	idx := Build(nil, nil, nil)
	if len(idx.CourseByCode) != 0 || len(idx.RoomsByType) != 0 {
		t.Fatalf("expected empty index")
	}
}
