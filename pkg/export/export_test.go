package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vicharak-in/tlinker/core/model"
)

func sampleSessions() []model.ScheduledSession {
	return []model.ScheduledSession{
		{
			Program: "Computer Science", Section: "A", Course: "Data Structures",
			Faculty: "Dr. Smith", Room: "Lecture Hall A", Day: "Mon",
			Start: 0, End: 5, StartTime: "08:00", EndTime: "10:30",
		},
		{
			Program: "Computer Science", Section: "A", Course: "Algorithms",
			Faculty: "Dr. Wilson", Room: "Computer Lab 1", Day: "Tue",
			Start: 3, End: 0, StartTime: "09:30", EndTime: "08:00",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleSessions()); err != nil {
		t.Fatalf("write: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("want header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "program" || records[0][9] != "end_time" {
		t.Fatalf("bad header %v", records[0])
	}
	if records[2][2] != "Algorithms" || records[2][7] != "0" {
		t.Fatalf("bad row %v", records[2])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleSessions()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []model.ScheduledSession
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].StartTime != "08:00" {
		t.Fatalf("round trip: %#v", got)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("nil sessions must encode as []: %q", buf.String())
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleSessions()); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(xlsxSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want header + 2 rows, got %d", len(rows))
	}
	if rows[1][2] != "Data Structures" || rows[1][8] != "08:00" {
		t.Fatalf("bad row %v", rows[1])
	}
}

func TestWriteICS(t *testing.T) {
	c := model.Constraints{Days: []string{"Mon", "Tue"}, SlotsPerDay: 16}
	weekStart := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	if err := WriteICS(&buf, sampleSessions(), c, weekStart); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "BEGIN:VEVENT") != 2 {
		t.Fatalf("want 2 events:\n%s", out)
	}
	if !strings.Contains(out, "SUMMARY:Data Structures (A)") {
		t.Fatalf("missing summary:\n%s", out)
	}
	if !strings.Contains(out, "LOCATION:Lecture Hall A") {
		t.Fatalf("missing location:\n%s", out)
	}
	// first session: Monday of the target week at 08:00 UTC
	if !strings.Contains(out, "DTSTART:20240902T080000Z") {
		t.Fatalf("missing start:\n%s", out)
	}
}

func TestWriteICSUnknownDay(t *testing.T) {
	c := model.Constraints{Days: []string{"Mon"}, SlotsPerDay: 16}
	s := sampleSessions()[:1]
	s[0].Day = "Fri"
	if err := WriteICS(&bytes.Buffer{}, s, c, time.Now()); err == nil {
		t.Fatalf("expected error for day outside the constraint set")
	}
}
