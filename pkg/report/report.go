// Package report computes occupancy statistics over a generated timetable.
package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vicharak-in/tlinker/core/model"
)

// DayLoad is the number of slot-units occupied on a single day.
type DayLoad struct {
	Day      string `json:"day"`
	Sessions int    `json:"sessions"`
	Slots    int    `json:"slots"`
}

// Summary aggregates per-day load and overall grid utilization for one run.
type Summary struct {
	Days        []DayLoad `json:"days"`
	Sessions    int       `json:"sessions"`
	MeanSlots   float64   `json:"mean_slots"`
	StdDevSlots float64   `json:"stddev_slots"`
	// Utilization is occupied slot-units divided by the grid size.
	// Overlapping sessions are counted once each, so values above 1 are
	// possible on dense timetables.
	Utilization float64 `json:"utilization"`
}

// Build summarizes sessions against the constraint grid. Every day from the
// constraints appears in the output even when nothing is scheduled on it.
func Build(sessions []model.ScheduledSession, c model.Constraints) (Summary, error) {
	if err := c.Validate(); err != nil {
		return Summary{}, err
	}

	loads := make(map[string]*DayLoad, len(c.Days))
	for _, d := range c.Days {
		loads[d] = &DayLoad{Day: d}
	}

	for _, s := range sessions {
		dl, ok := loads[s.Day]
		if !ok {
			return Summary{}, fmt.Errorf("session %q scheduled on unknown day %q", s.Course, s.Day)
		}
		dl.Sessions++
		dl.Slots += sessionSlots(s, c)
	}

	sum := Summary{Days: make([]DayLoad, 0, len(c.Days)), Sessions: len(sessions)}
	slots := make([]float64, 0, len(c.Days))
	occupied := 0
	for _, d := range c.Days {
		dl := loads[d]
		sum.Days = append(sum.Days, *dl)
		slots = append(slots, float64(dl.Slots))
		occupied += dl.Slots
	}

	sum.MeanSlots = stat.Mean(slots, nil)
	if len(slots) > 1 {
		sum.StdDevSlots = stat.StdDev(slots, nil)
	}
	sum.Utilization = float64(occupied) / float64(c.GridSize())
	return sum, nil
}

// Busiest returns the days sorted by descending slot load. Ties keep the
// constraint day order.
func Busiest(sum Summary) []DayLoad {
	out := make([]DayLoad, len(sum.Days))
	copy(out, sum.Days)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Slots > out[j].Slots })
	return out
}

// sessionSlots counts how many slot-units a session occupies on its start
// day. Sessions whose end wrapped past the day boundary are counted up to
// the end of that day.
func sessionSlots(s model.ScheduledSession, c model.Constraints) int {
	if s.End >= s.Start {
		return s.End - s.Start + 1
	}
	return c.SlotsPerDay - s.Start
}
