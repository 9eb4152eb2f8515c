// Package export renders a generated timetable in the formats the
// surrounding application serves: delimited text, JSON, spreadsheets and
// iCalendar.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/vicharak-in/tlinker/core/model"
)

// WriteJSON writes the sessions to w in JSON format.
func WriteJSON(w io.Writer, sessions []model.ScheduledSession) error {
	if sessions == nil {
		sessions = []model.ScheduledSession{}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(sessions)
}

// WriteCSV writes the sessions to w in CSV format with the timetable headers.
func WriteCSV(w io.Writer, sessions []model.ScheduledSession) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.SessionColumns); err != nil {
		return err
	}
	for _, s := range sessions {
		rec := []string{
			s.Program,
			s.Section,
			s.Course,
			s.Faculty,
			s.Room,
			s.Day,
			strconv.Itoa(s.Start),
			strconv.Itoa(s.End),
			s.StartTime,
			s.EndTime,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
