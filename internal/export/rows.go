// Package export flattens reconciled timelines and audit reports into
// tabular rows and writes them as CSV or XLSX. The interval engine only
// hands back data structures; all serialization lives here.
package export

import (
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
	"github.com/pdatalab/tripmatch-backend-go/internal/models"
	"github.com/pdatalab/tripmatch-backend-go/internal/stats"
)

// TimelineRows flattens a reconciled partition into transport rows,
// ordered by begin instant, labeled "<status> consistent" and annotated
// with the time-property facets.
func TimelineRows(sp interval.StatusPartition) []models.TimelineRow {
	flat := sp.Flatten()
	rows := make([]models.TimelineRow, 0, len(flat))
	for _, p := range flat {
		rows = append(rows, models.TimelineRow{
			Begin:         p.Begin,
			End:           p.End,
			Label:         p.Status.ConsistentLabel(),
			DurationHours: stats.DurationHours(p),
			DayOfWeek:     stats.DayOfWeek(p.Begin),
			DayType:       stats.DayType(p.Begin),
			Sunday:        stats.Sunday(p.Begin),
			TimeOfDay:     stats.TimeOfDay(p.Begin),
			Night:         stats.Night(p.Begin),
		})
	}
	return rows
}

// AuditGroups flattens the auditor's match groups for transport.
func AuditGroups(groups []interval.MatchGroup) []models.AuditGroup {
	out := make([]models.AuditGroup, 0, len(groups))
	for _, g := range groups {
		events := make([]models.AuditEvent, 0, len(g.Events))
		for _, ev := range g.Events {
			e := models.AuditEvent{
				Date:     ev.Date,
				IsBegin:  ev.IsBegin,
				SourceID: ev.Source.ID,
			}
			if ev.Loc != nil {
				lat, lng := ev.Loc.Lat, ev.Loc.Lng
				e.Lat, e.Lng = &lat, &lng
			}
			events = append(events, e)
		}
		out = append(out, models.AuditGroup{
			IntervalID: g.Interval.ID,
			Begin:      g.Interval.Begin,
			End:        g.Interval.End,
			Events:     events,
			Suspect:    g.Suspect(),
		})
	}
	return out
}
