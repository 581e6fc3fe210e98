package interval

import "time"

// IntervalsContaining returns every interval whose closed bounds contain
// t, in ascending-begin order. intervals must already be sorted ascending
// by begin (see SortByBegin); the scan stops at the first interval whose
// begin is after t, so candidates past the instant are never touched.
func IntervalsContaining(t time.Time, intervals []Period) []Period {
	var out []Period
	for _, p := range intervals {
		if p.Begin.After(t) {
			break
		}
		if p.Contains(t) {
			out = append(out, p)
		}
	}
	return out
}

// Scanner is a forward-only cursor over intervals sorted ascending by
// begin. It answers a sequence of non-decreasing instant queries without
// re-scanning from the start: each query resumes where the previous one
// left off. The position is owned by the Scanner, so two call sites must
// not share one expecting independent scans.
type Scanner struct {
	intervals []Period
	pos       int
}

// NewScanner returns a cursor over intervals, which must be sorted
// ascending by begin.
func NewScanner(intervals []Period) *Scanner {
	return &Scanner{intervals: intervals}
}

// Next returns the first not-yet-consumed interval containing t. The
// returned interval is consumed. If the cursor reaches an interval whose
// begin is after t, that interval is consumed too and the query reports
// no match; earlier skipped intervals are never revisited.
func (sc *Scanner) Next(t time.Time) (Period, bool) {
	for sc.pos < len(sc.intervals) {
		p := sc.intervals[sc.pos]
		sc.pos++
		if p.Contains(t) {
			return p, true
		}
		if t.Before(p.Begin) {
			return Period{}, false
		}
	}
	return Period{}, false
}
