package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pdatalab/tripmatch-backend-go/internal/models"
)

const timeFormat = "2006-01-02 15:04:05 -07:00"

var timelineHeader = []string{
	"begin", "end", "label", "duration_hours",
	"day_of_week", "day_type", "sunday", "time_of_day", "night",
}

var auditHeader = []string{
	"interval_id", "interval_begin", "interval_end", "suspect",
	"event_date", "is_begin", "lat", "lng", "source_id",
}

func formatTime(t time.Time) string {
	return t.Format(timeFormat)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// WriteTimelineCSV writes reconciled timeline rows as CSV.
func WriteTimelineCSV(w io.Writer, rows []models.TimelineRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(timelineHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			formatTime(r.Begin), formatTime(r.End), r.Label, formatFloat(r.DurationHours),
			r.DayOfWeek, r.DayType, r.Sunday, r.TimeOfDay, r.Night,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAuditCSV writes audit match groups as CSV, one line per matched
// event so that suspect intervals stay visible as short groups.
func WriteAuditCSV(w io.Writer, groups []models.AuditGroup) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(auditHeader); err != nil {
		return err
	}
	for _, g := range groups {
		for _, ev := range g.Events {
			record := []string{
				g.IntervalID, formatTime(g.Begin), formatTime(g.End), strconv.FormatBool(g.Suspect),
				formatTime(ev.Date), strconv.FormatBool(ev.IsBegin),
				formatOptFloat(ev.Lat), formatOptFloat(ev.Lng), ev.SourceID,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 6, 64)
}
