package stats

import (
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

// Sum adds up a slice of float64 values.
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Mean calculates the arithmetic mean of a slice of float64 values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// DurationHours returns a period's length in hours.
func DurationHours(p interval.Period) float64 {
	return p.Duration().Hours()
}

// TotalsByLabel sums up hours covered per status of a partition, keyed
// by the reconciled label.
func TotalsByLabel(sp interval.StatusPartition) map[string]float64 {
	totals := make(map[string]float64, len(sp))
	for _, label := range sp.Labels() {
		var hours float64
		for _, p := range sp[label].Periods() {
			hours += DurationHours(p)
		}
		totals[label.ConsistentLabel()] = hours
	}
	return totals
}

// GroupTotals sums up hours per group key, e.g. per day type or time of
// day (see facets.go).
func GroupTotals(periods []interval.Period, key func(interval.Period) string) map[string]float64 {
	totals := make(map[string]float64)
	for _, p := range periods {
		totals[key(p)] += DurationHours(p)
	}
	return totals
}
