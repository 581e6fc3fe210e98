package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSumAndMean(t *testing.T) {
	assert.Zero(t, Sum(nil))
	assert.Zero(t, Mean(nil))
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestTotalsByLabel(t *testing.T) {
	part, _ := interval.BuildPartition([]interval.Period{
		{Begin: ts("2022-11-05T10:00:00"), End: ts("2022-11-05T11:30:00"), Status: interval.StatusP3},
		{Begin: ts("2022-11-05T12:00:00"), End: ts("2022-11-05T12:30:00"), Status: interval.StatusP3},
		{Begin: ts("2022-11-05T08:00:00"), End: ts("2022-11-05T09:00:00"), Status: interval.StatusP1},
	})

	totals := TotalsByLabel(part)
	assert.InDelta(t, 2.0, totals["P3 consistent"], 1e-9)
	assert.InDelta(t, 1.0, totals["P1 consistent"], 1e-9)
}

func TestGroupTotalsByFacet(t *testing.T) {
	periods := []interval.Period{
		{Begin: ts("2022-11-05T10:00:00"), End: ts("2022-11-05T12:00:00")}, // Saturday
		{Begin: ts("2022-11-07T10:00:00"), End: ts("2022-11-07T11:00:00")}, // Monday
	}

	totals := GroupTotals(periods, func(p interval.Period) string { return DayType(p.Begin) })
	assert.InDelta(t, 2.0, totals["weekend"], 1e-9)
	assert.InDelta(t, 1.0, totals["weekday"], 1e-9)
}

func TestFacets(t *testing.T) {
	sat := ts("2022-11-05T03:00:00")
	sun := ts("2022-11-06T12:00:00")
	mon := ts("2022-11-07T15:00:00")

	assert.Equal(t, "Saturday", DayOfWeek(sat))
	assert.Equal(t, "weekend", DayType(sat))
	assert.Equal(t, "weekday", DayType(mon))
	assert.Equal(t, "sunday", Sunday(sun))
	assert.Equal(t, "weekday", Sunday(sat))
	assert.Equal(t, "weekday", Sunday(mon))
	assert.Equal(t, "AM", TimeOfDay(sat))
	assert.Equal(t, "PM", TimeOfDay(mon))
	assert.Equal(t, "night", Night(sat))
	assert.Equal(t, "day", Night(mon))
}
