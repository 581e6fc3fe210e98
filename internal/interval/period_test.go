package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tripRow(request, begintrip, dropoff string) Row {
	return Row{
		Times: map[string]time.Time{
			"request_ts":   ts(request),
			"begintrip_ts": ts(begintrip),
			"dropoff_ts":   ts(dropoff),
		},
		Fields: map[string]any{"trip_distance_km": 5.2},
	}
}

var tripColumns = []string{"request_ts", "begintrip_ts", "dropoff_ts"}

var tripExtras = []MetaFunc{
	func(Row) PeriodMeta { return PeriodMeta{Status: StatusP2} },
	func(r Row) PeriodMeta {
		return PeriodMeta{Status: StatusP3, Attrs: map[string]any{"distance_km": r.Fields["trip_distance_km"]}}
	},
}

func TestBuildPeriods(t *testing.T) {
	row := tripRow("2022-11-05T15:47:00", "2022-11-05T16:00:00", "2022-11-05T16:13:00")

	periods, err := BuildPeriods(row, tripColumns, tripExtras)
	require.NoError(t, err)
	require.Len(t, periods, 2)

	assert.Equal(t, ts("2022-11-05T15:47:00"), periods[0].Begin)
	assert.Equal(t, ts("2022-11-05T16:00:00"), periods[0].End)
	assert.Equal(t, StatusP2, periods[0].Status)

	assert.Equal(t, ts("2022-11-05T16:00:00"), periods[1].Begin)
	assert.Equal(t, ts("2022-11-05T16:13:00"), periods[1].End)
	assert.Equal(t, StatusP3, periods[1].Status)
	assert.Equal(t, 5.2, periods[1].Attrs["distance_km"])
}

func TestBuildPeriodsArityMismatch(t *testing.T) {
	row := tripRow("2022-11-05T15:47:00", "2022-11-05T16:00:00", "2022-11-05T16:13:00")

	_, err := BuildPeriods(row, tripColumns, tripExtras[:1])
	assert.ErrorIs(t, err, ErrArityMismatch)

	_, err = BuildPeriods(row, tripColumns[:1], nil)
	assert.ErrorIs(t, err, ErrArityMismatch)

	_, err = BuildPeriodTable([]Row{row}, tripColumns, tripExtras[:1])
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestBuildPeriodTablePreservesRowOrder(t *testing.T) {
	rows := []Row{
		tripRow("2022-11-05T15:47:00", "2022-11-05T16:00:00", "2022-11-05T16:13:00"),
		tripRow("2022-11-05T09:00:00", "2022-11-05T09:05:00", "2022-11-05T09:40:00"),
	}

	periods, err := BuildPeriodTable(rows, tripColumns, tripExtras)
	require.NoError(t, err)
	require.Len(t, periods, 4)

	// Output follows input row order, not chronological order.
	assert.Equal(t, ts("2022-11-05T15:47:00"), periods[0].Begin)
	assert.Equal(t, ts("2022-11-05T09:00:00"), periods[2].Begin)
}

func TestBuildPeriodsOutOfOrderTimestamps(t *testing.T) {
	// Swapped begintrip/dropoff: the constructor must not fail, it emits
	// an invalid period for downstream exclusion.
	row := tripRow("2022-11-05T15:47:00", "2022-11-05T16:13:00", "2022-11-05T16:00:00")

	periods, err := BuildPeriods(row, tripColumns, tripExtras)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.True(t, periods[0].Valid())
	assert.False(t, periods[1].Valid())
}

func TestPeriodClosedBounds(t *testing.T) {
	p := Period{Begin: ts("2022-11-05T10:00:00"), End: ts("2022-11-05T11:00:00")}

	assert.True(t, p.Contains(ts("2022-11-05T10:00:00")))
	assert.True(t, p.Contains(ts("2022-11-05T11:00:00")))
	assert.False(t, p.Contains(ts("2022-11-05T11:00:01")))

	touching := Period{Begin: ts("2022-11-05T11:00:00"), End: ts("2022-11-05T12:00:00")}
	assert.True(t, p.Overlaps(touching), "boundary touch counts as overlap")
	assert.True(t, touching.Overlaps(p))

	apart := Period{Begin: ts("2022-11-05T12:00:00"), End: ts("2022-11-05T13:00:00")}
	assert.False(t, p.Overlaps(apart))

	degenerate := Period{Begin: ts("2022-11-05T10:30:00"), End: ts("2022-11-05T10:30:00")}
	assert.True(t, degenerate.Valid())
	assert.True(t, p.Overlaps(degenerate))
}
