package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/vicharak-in/tlinker/core/model"
	"github.com/vicharak-in/tlinker/core/timegrid"
)

// WriteICS writes the sessions to w as an iCalendar feed. Each session
// becomes one event in the week starting at weekStart, whose weekday is the
// day label's position in the constraint set. A session whose end slot
// wrapped below its start is exported with a single-slot duration; the slot
// indices stay authoritative in the tabular exports.
func WriteICS(w io.Writer, sessions []model.ScheduledSession, c model.Constraints, weekStart time.Time) error {
	dayIdx := make(map[string]int, len(c.Days))
	for i, d := range c.Days {
		dayIdx[d] = i
	}
	weekStart = time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tlinker//timetable//EN")
	for i, s := range sessions {
		offset, ok := dayIdx[s.Day]
		if !ok {
			return fmt.Errorf("session %d: day %q not in constraint set", i, s.Day)
		}
		day := weekStart.AddDate(0, 0, offset)
		start := day.Add(slotOffset(s.Start))
		end := day.Add(slotOffset(s.End) + timegrid.SlotMinutes*time.Minute)
		if !end.After(start) {
			end = start.Add(timegrid.SlotMinutes * time.Minute)
		}

		ev := cal.AddEvent(fmt.Sprintf("%s-%d@tlinker", slug(s.Course), i))
		ev.SetCreatedTime(weekStart)
		ev.SetDtStampTime(weekStart)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("%s (%s)", s.Course, s.Section))
		ev.SetLocation(s.Room)
		ev.SetDescription(fmt.Sprintf("Program: %s\nFaculty: %s", s.Program, s.Faculty))
	}
	return cal.SerializeTo(w)
}

func slotOffset(slot int) time.Duration {
	return time.Duration(timegrid.DayStartHour)*time.Hour +
		time.Duration(slot)*timegrid.SlotMinutes*time.Minute
}

func slug(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
}
