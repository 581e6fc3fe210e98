package export

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
	"github.com/pdatalab/tripmatch-backend-go/internal/models"
)

var fusionHeader = []string{
	"session_id", "session_begin", "session_end", "session_label",
	"trip_id", "trip_begin", "trip_end", "trip_label",
	"overlap_begin", "overlap_end", "overlap_hours",
}

// FusionRows flattens the session×trip overlap pairs into transport
// rows. Pairs come in with the session on the left; the overlap range
// is the intersection of the two closed intervals, degenerate when the
// pair merely touches at a boundary.
func FusionRows(pairs []interval.MatchPair) []models.FusionRow {
	rows := make([]models.FusionRow, 0, len(pairs))
	for _, pair := range pairs {
		begin := laterTime(pair.Left.Begin, pair.Right.Begin)
		end := earlierTime(pair.Left.End, pair.Right.End)
		rows = append(rows, models.FusionRow{
			SessionID:    pair.Left.ID,
			SessionBegin: pair.Left.Begin,
			SessionEnd:   pair.Left.End,
			SessionLabel: pair.Left.Status.String(),
			TripID:       pair.Right.ID,
			TripBegin:    pair.Right.Begin,
			TripEnd:      pair.Right.End,
			TripLabel:    pair.Right.Status.String(),
			OverlapBegin: begin,
			OverlapEnd:   end,
			OverlapHours: end.Sub(begin).Hours(),
		})
	}
	return rows
}

func laterTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// WriteFusionCSV writes the fusion table as CSV.
func WriteFusionCSV(w io.Writer, rows []models.FusionRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fusionHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.SessionID, formatTime(r.SessionBegin), formatTime(r.SessionEnd), r.SessionLabel,
			r.TripID, formatTime(r.TripBegin), formatTime(r.TripEnd), r.TripLabel,
			formatTime(r.OverlapBegin), formatTime(r.OverlapEnd), formatFloat(r.OverlapHours),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FusionSheet renders the fusion table as a worksheet.
func FusionSheet(name string, rows []models.FusionRow) Sheet {
	sheet := Sheet{Name: name, Header: fusionHeader}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			r.SessionID, formatTime(r.SessionBegin), formatTime(r.SessionEnd), r.SessionLabel,
			r.TripID, formatTime(r.TripBegin), formatTime(r.TripEnd), r.TripLabel,
			formatTime(r.OverlapBegin), formatTime(r.OverlapEnd), r.OverlapHours,
		})
	}
	return sheet
}
