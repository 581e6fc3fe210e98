package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func samplePartition(t *testing.T) interval.StatusPartition {
	t.Helper()
	trips, report := interval.BuildPartition([]interval.Period{
		{Begin: ts("2022-11-05T10:00:00"), End: ts("2022-11-05T11:00:00"), Status: interval.StatusP2},
	})
	require.Empty(t, report.Invalid)
	onoff, _ := interval.BuildPartition([]interval.Period{
		{Begin: ts("2022-11-05T10:30:00"), End: ts("2022-11-05T10:45:00"), Status: interval.StatusP3},
	})
	return interval.Reconcile(trips, onoff, interval.ReconcileOptions{})
}

func TestTimelineRows(t *testing.T) {
	rows := TimelineRows(samplePartition(t))
	require.Len(t, rows, 3)

	assert.Equal(t, "P2 consistent", rows[0].Label)
	assert.Equal(t, "P3 consistent", rows[1].Label)
	assert.Equal(t, "P2 consistent", rows[2].Label)
	assert.Equal(t, ts("2022-11-05T10:00:00"), rows[0].Begin)
	assert.InDelta(t, 0.5, rows[0].DurationHours, 1e-9)
	assert.Equal(t, "Saturday", rows[0].DayOfWeek)
	assert.Equal(t, "weekend", rows[0].DayType)
	assert.Equal(t, "weekday", rows[0].Sunday)
	assert.Equal(t, "AM", rows[0].TimeOfDay)
}

func TestWriteTimelineCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimelineCSV(&buf, TimelineRows(samplePartition(t))))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(timelineHeader, ","), lines[0])
	assert.Contains(t, lines[1], "P2 consistent")
	assert.Contains(t, lines[2], "P3 consistent")
}

func TestAuditGroupsAndCSV(t *testing.T) {
	loc := interval.LatLng{Lat: 46.2, Lng: 6.1}
	src := []interval.Period{
		{ID: "s1", Begin: ts("2022-11-05T10:00:00"), End: ts("2022-11-05T11:00:00"), BeginLoc: &loc, EndLoc: &loc},
	}
	dst := []interval.Period{
		{ID: "d1", Begin: ts("2022-11-05T09:00:00"), End: ts("2022-11-05T10:30:00")},
	}

	groups := AuditGroups(interval.Audit(src, dst))
	require.Len(t, groups, 1)
	assert.Equal(t, "d1", groups[0].IntervalID)
	assert.True(t, groups[0].Suspect)
	require.Len(t, groups[0].Events, 1)
	assert.Equal(t, "s1", groups[0].Events[0].SourceID)
	require.NotNil(t, groups[0].Events[0].Lat)
	assert.Equal(t, 46.2, *groups[0].Events[0].Lat)

	var buf bytes.Buffer
	require.NoError(t, WriteAuditCSV(&buf, groups))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "d1")
	assert.Contains(t, lines[1], "true")
}

func TestFusionRowsAndCSV(t *testing.T) {
	sessions := []interval.Period{
		{ID: "s1", Begin: ts("2022-11-05T10:00:00"), End: ts("2022-11-05T11:00:00"), Status: interval.StatusP1},
		{ID: "s2", Begin: ts("2022-11-05T12:00:00"), End: ts("2022-11-05T13:00:00"), Status: interval.StatusP0},
	}
	trips := []interval.Period{
		{ID: "t1", Begin: ts("2022-11-05T10:30:00"), End: ts("2022-11-05T10:45:00"), Status: interval.StatusP3},
	}

	rows := FusionRows(interval.OverlapJoin(sessions, trips))
	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].SessionID)
	assert.Equal(t, "t1", rows[0].TripID)
	assert.Equal(t, "P1", rows[0].SessionLabel)
	assert.Equal(t, "P3", rows[0].TripLabel)
	// The overlap is the trip, fully inside the session.
	assert.Equal(t, ts("2022-11-05T10:30:00"), rows[0].OverlapBegin)
	assert.Equal(t, ts("2022-11-05T10:45:00"), rows[0].OverlapEnd)
	assert.InDelta(t, 0.25, rows[0].OverlapHours, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, WriteFusionCSV(&buf, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(fusionHeader, ","), lines[0])
	assert.Contains(t, lines[1], "s1")
	assert.Contains(t, lines[1], "t1")
}

func TestFusionBoundaryTouch(t *testing.T) {
	sessions := []interval.Period{
		{ID: "s1", Begin: ts("2022-11-05T10:00:00"), End: ts("2022-11-05T10:30:00"), Status: interval.StatusP1},
	}
	trips := []interval.Period{
		{ID: "t1", Begin: ts("2022-11-05T10:30:00"), End: ts("2022-11-05T10:45:00"), Status: interval.StatusP3},
	}

	rows := FusionRows(interval.OverlapJoin(sessions, trips))
	require.Len(t, rows, 1)
	assert.Equal(t, rows[0].OverlapBegin, rows[0].OverlapEnd)
	assert.Zero(t, rows[0].OverlapHours)
}

func TestWriteWorkbook(t *testing.T) {
	rows := TimelineRows(samplePartition(t))
	var buf bytes.Buffer
	err := WriteWorkbook(&buf, []Sheet{
		TimelineSheet("timeline", rows),
		AuditSheet("audit", nil),
	})
	require.NoError(t, err)
	// XLSX files are zip archives.
	assert.Equal(t, "PK", buf.String()[:2])
}
