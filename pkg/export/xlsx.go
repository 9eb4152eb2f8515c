package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vicharak-in/tlinker/core/model"
)

const xlsxSheet = "Timetable"

// WriteXLSX writes the sessions to w as a spreadsheet with one header row and
// one row per session, mirroring the CSV layout.
func WriteXLSX(w io.Writer, sessions []model.ScheduledSession) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := make([]any, len(model.SessionColumns))
	for i, c := range model.SessionColumns {
		header[i] = c
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, s := range sessions {
		row := []any{
			s.Program, s.Section, s.Course, s.Faculty, s.Room,
			s.Day, s.Start, s.End, s.StartTime, s.EndTime,
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(xlsxSheet, cell, &values)
}
