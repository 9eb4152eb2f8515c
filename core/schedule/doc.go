// Package schedule implements the core timetable generation logic.
//
// It turns a snapshot of academic data (students, faculty, courses, rooms)
// plus a constraint grid into a list of scheduled sessions. Course sections
// are placed sequentially along a single slot counter that runs across the
// whole week, with one free slot between consecutive placements.
//
// Key components:
//   - Engine: validates the input, resolves rooms and faculty, and places
//     each requested course section.
//   - Input: the read-only data one run operates on.
//   - Result: the placed sessions plus run metadata and skipped selections.
//
// Resource resolution is deterministic: the first room of the requested
// type (or the first room overall when none match) and the first member of
// the course's faculty pool (or the first faculty overall when the pool is
// empty). A pool member missing from the dataset, or an empty room or
// faculty list, aborts the run. Selections naming unknown course codes are
// dropped silently and reported in Result.Skipped.
//
// The engine does not check room, faculty or student conflicts; it is a
// sequential allocator, not a constraint solver.
package schedule
