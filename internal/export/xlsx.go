package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pdatalab/tripmatch-backend-go/internal/models"
)

// Sheet is one worksheet of an export workbook.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// TimelineSheet renders reconciled timeline rows as a worksheet.
func TimelineSheet(name string, rows []models.TimelineRow) Sheet {
	sheet := Sheet{Name: name, Header: timelineHeader}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			formatTime(r.Begin), formatTime(r.End), r.Label, r.DurationHours,
			r.DayOfWeek, r.DayType, r.Sunday, r.TimeOfDay, r.Night,
		})
	}
	return sheet
}

// AuditSheet renders audit match groups as a worksheet, one line per
// matched event.
func AuditSheet(name string, groups []models.AuditGroup) Sheet {
	sheet := Sheet{Name: name, Header: auditHeader}
	for _, g := range groups {
		for _, ev := range g.Events {
			var lat, lng any
			if ev.Lat != nil {
				lat, lng = *ev.Lat, *ev.Lng
			}
			sheet.Rows = append(sheet.Rows, []any{
				g.IntervalID, formatTime(g.Begin), formatTime(g.End), g.Suspect,
				formatTime(ev.Date), ev.IsBegin, lat, lng, ev.SourceID,
			})
		}
	}
	return sheet
}

// WriteWorkbook writes the sheets, in order, as one XLSX workbook.
func WriteWorkbook(w io.Writer, sheets []Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return err
			}
		}
		header := make([]any, len(sheet.Header))
		for j, h := range sheet.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return err
		}
		for j, row := range sheet.Rows {
			cell := fmt.Sprintf("A%d", j+2)
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}
