package dataset

import "github.com/vicharak-in/tlinker/core/model"

// DefaultConstraints is the grid the sample dataset was built for: a five
// day week with sixteen half-hour slots per day.
func DefaultConstraints() model.Constraints {
	return model.Constraints{
		Days:        []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		SlotsPerDay: 16,
	}
}

// Seed loads the bundled sample dataset into the store: five students, five
// faculty members, thirteen courses across two programs and eight rooms.
func Seed(s *Store) error {
	if err := s.Replace(KindStudents, model.StudentsTable(SampleStudents())); err != nil {
		return err
	}
	if err := s.Replace(KindFaculty, model.FacultiesTable(SampleFaculty())); err != nil {
		return err
	}
	if err := s.Replace(KindCourses, model.CoursesTable(SampleCourses())); err != nil {
		return err
	}
	if err := s.Replace(KindRooms, model.RoomsTable(SampleRooms())); err != nil {
		return err
	}
	return s.SetConstraints(DefaultConstraints())
}

func SampleStudents() []model.Student {
	return []model.Student{
		{ID: 1, Name: "John Doe", Program: "Computer Science", Semester: 3, ChosenCourses: []string{"CS301", "CS302", "MATH201"}, CreditsTarget: 18},
		{ID: 2, Name: "Jane Smith", Program: "Computer Science", Semester: 3, ChosenCourses: []string{"CS301", "CS303", "PHYS101"}, CreditsTarget: 18},
		{ID: 3, Name: "Bob Johnson", Program: "Electronics", Semester: 5, ChosenCourses: []string{"EE401", "EE402", "MATH301"}, CreditsTarget: 20},
		{ID: 4, Name: "Alice Brown", Program: "Computer Science", Semester: 1, ChosenCourses: []string{"CS101", "MATH101", "ENG101"}, CreditsTarget: 16},
		{ID: 5, Name: "Charlie Wilson", Program: "Electronics", Semester: 5, ChosenCourses: []string{"EE401", "EE403", "CS201"}, CreditsTarget: 20},
	}
}

func SampleFaculty() []model.Faculty {
	week := func(rng string) []string {
		return []string{"Mon:" + rng, "Tue:" + rng, "Wed:" + rng, "Thu:" + rng, "Fri:" + rng}
	}
	return []model.Faculty{
		{ID: 1, Name: "Dr. Smith", Skills: []string{"Computer Science", "Algorithms", "Data Structures"}, Availability: week("1-8"), MaxLoad: 40},
		{ID: 2, Name: "Prof. Johnson", Skills: []string{"Mathematics", "Calculus", "Linear Algebra"}, Availability: week("1-6"), MaxLoad: 30},
		{ID: 3, Name: "Dr. Brown", Skills: []string{"Electronics", "Circuit Design", "Digital Systems"}, Availability: week("2-8"), MaxLoad: 35},
		{ID: 4, Name: "Prof. Davis", Skills: []string{"Physics", "Mechanics", "Thermodynamics"}, Availability: week("1-4"), MaxLoad: 25},
		{ID: 5, Name: "Dr. Wilson", Skills: []string{"Computer Science", "Software Engineering", "Database Systems"}, Availability: week("3-8"), MaxLoad: 40},
	}
}

func SampleCourses() []model.Course {
	weekdays := []int{0, 1, 2, 3, 4}
	return []model.Course{
		{Code: "CS301", Name: "Data Structures", Type: "Major", Credits: 4, TheoryHours: 3, PracticalHours: 2, Program: "Computer Science", Semester: 3, Section: "A", DurationSlots: 6, RoomType: "Lecture Hall", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7, 9}, FacultyPool: []int{1, 5}},
		{Code: "CS302", Name: "Algorithms", Type: "Major", Credits: 4, TheoryHours: 3, PracticalHours: 2, Program: "Computer Science", Semester: 3, Section: "A", DurationSlots: 6, RoomType: "Lecture Hall", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7, 9}, FacultyPool: []int{1, 5}},
		{Code: "CS303", Name: "Software Engineering", Type: "Major", Credits: 3, TheoryHours: 2, PracticalHours: 2, Program: "Computer Science", Semester: 3, Section: "A", DurationSlots: 4, RoomType: "Computer Lab", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7}, FacultyPool: []int{5}},
		{Code: "CS101", Name: "Programming Fundamentals", Type: "Major", Credits: 4, TheoryHours: 3, PracticalHours: 2, Program: "Computer Science", Semester: 1, Section: "A", DurationSlots: 6, RoomType: "Computer Lab", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7, 9}, FacultyPool: []int{1, 5}},
		{Code: "CS201", Name: "Object-Oriented Programming", Type: "Major", Credits: 3, TheoryHours: 2, PracticalHours: 2, Program: "Computer Science", Semester: 2, Section: "A", DurationSlots: 4, RoomType: "Computer Lab", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7}, FacultyPool: []int{5}},
		{Code: "MATH201", Name: "Calculus III", Type: "Major", Credits: 4, TheoryHours: 3, PracticalHours: 1, Program: "Computer Science", Semester: 3, Section: "A", DurationSlots: 4, RoomType: "Lecture Hall", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7}, FacultyPool: []int{2}},
		{Code: "MATH101", Name: "Calculus I", Type: "Major", Credits: 4, TheoryHours: 3, PracticalHours: 1, Program: "Computer Science", Semester: 1, Section: "A", DurationSlots: 4, RoomType: "Lecture Hall", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7}, FacultyPool: []int{2}},
		{Code: "MATH301", Name: "Linear Algebra", Type: "Major", Credits: 3, TheoryHours: 2, PracticalHours: 1, Program: "Electronics", Semester: 5, Section: "A", DurationSlots: 3, RoomType: "Lecture Hall", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5}, FacultyPool: []int{2}},
		{Code: "PHYS101", Name: "Physics I", Type: "Major", Credits: 4, TheoryHours: 3, PracticalHours: 2, Program: "Computer Science", Semester: 1, Section: "A", DurationSlots: 5, RoomType: "Physics Lab", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7}, FacultyPool: []int{4}},
		{Code: "ENG101", Name: "Technical Writing", Type: "Skill", Credits: 2, TheoryHours: 2, PracticalHours: 0, Program: "Computer Science", Semester: 1, Section: "A", DurationSlots: 2, RoomType: "Classroom", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7}, FacultyPool: []int{1, 2, 3, 4, 5}},
		{Code: "EE401", Name: "Digital Electronics", Type: "Major", Credits: 4, TheoryHours: 3, PracticalHours: 2, Program: "Electronics", Semester: 5, Section: "A", DurationSlots: 6, RoomType: "Electronics Lab", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7, 9}, FacultyPool: []int{3}},
		{Code: "EE402", Name: "Control Systems", Type: "Major", Credits: 4, TheoryHours: 3, PracticalHours: 2, Program: "Electronics", Semester: 5, Section: "A", DurationSlots: 6, RoomType: "Electronics Lab", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7, 9}, FacultyPool: []int{3}},
		{Code: "EE403", Name: "Microprocessors", Type: "Major", Credits: 3, TheoryHours: 2, PracticalHours: 2, Program: "Electronics", Semester: 5, Section: "A", DurationSlots: 4, RoomType: "Computer Lab", AllowedDays: weekdays, AllowedStartSlots: []int{1, 3, 5, 7}, FacultyPool: []int{3, 5}},
	}
}

func SampleRooms() []model.Room {
	allDay := []string{"Mon:1-16", "Tue:1-16", "Wed:1-16", "Thu:1-16", "Fri:1-16"}
	return []model.Room{
		{ID: 1, Name: "Lecture Hall A", Capacity: 100, Type: "Lecture Hall", Availability: allDay},
		{ID: 2, Name: "Lecture Hall B", Capacity: 80, Type: "Lecture Hall", Availability: allDay},
		{ID: 3, Name: "Computer Lab 1", Capacity: 30, Type: "Computer Lab", Availability: allDay},
		{ID: 4, Name: "Computer Lab 2", Capacity: 30, Type: "Computer Lab", Availability: allDay},
		{ID: 5, Name: "Physics Lab", Capacity: 25, Type: "Physics Lab", Availability: allDay},
		{ID: 6, Name: "Electronics Lab", Capacity: 20, Type: "Electronics Lab", Availability: allDay},
		{ID: 7, Name: "Classroom 101", Capacity: 40, Type: "Classroom", Availability: allDay},
		{ID: 8, Name: "Classroom 102", Capacity: 40, Type: "Classroom", Availability: allDay},
	}
}
