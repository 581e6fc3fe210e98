package interval

import "time"

// PointEvent is one endpoint of a source interval, projected out for
// audit matching: the instant, which side of the interval it is, the
// location recorded at that side, and the source period itself.
type PointEvent struct {
	Date    time.Time
	IsBegin bool
	Loc     *LatLng
	Source  Period
}

// EndpointEvents decomposes each interval into its begin and end point
// events, in input order. A degenerate interval still yields two events
// at the same instant.
func EndpointEvents(intervals []Period) []PointEvent {
	out := make([]PointEvent, 0, 2*len(intervals))
	for _, p := range intervals {
		out = append(out,
			PointEvent{Date: p.Begin, IsBegin: true, Loc: p.BeginLoc, Source: p},
			PointEvent{Date: p.End, IsBegin: false, Loc: p.EndLoc, Source: p},
		)
	}
	return out
}

// Match pairs a point event with an interval whose closed bounds contain
// its instant.
type Match struct {
	Event    PointEvent
	Interval Period
}

// MatchEvents projects src into point events and matches each against
// the intervals of dst. dst is sorted internally; matches come out in
// event order, and per event in ascending order of the containing
// interval's begin. An event contained by several dst intervals yields
// several matches: overlap on the destination side is domain signal, not
// an error.
func MatchEvents(src, dst []Period) []Match {
	sorted := SortByBegin(dst)
	var out []Match
	for _, ev := range EndpointEvents(src) {
		for _, hit := range IntervalsContaining(ev.Date, sorted) {
			out = append(out, Match{Event: ev, Interval: hit})
		}
	}
	return out
}

// MatchGroup collects the point events that fell inside one destination
// interval. Intervals are identified by their bounds: two destination
// intervals with equal begin and end are the same group.
type MatchGroup struct {
	Interval Period
	Events   []PointEvent
}

// Suspect reports whether the group caught fewer than two point events.
// A completed source activity should normally have both its begin and
// end observed inside one destination interval, so a group with a single
// event points at a discrepancy between the two sources.
func (g MatchGroup) Suspect() bool {
	return len(g.Events) < 2
}

// Audit cross-validates src against dst: every source interval's begin
// and end events are matched against the destination intervals, and
// consecutive matches landing in the same destination interval are
// grouped. Every group is reported, including the final one and groups
// holding a single event; callers filter on Suspect as needed.
func Audit(src, dst []Period) []MatchGroup {
	var groups []MatchGroup
	var cur *MatchGroup
	for _, m := range MatchEvents(src, dst) {
		if cur == nil || !cur.Interval.SameBounds(m.Interval) {
			if cur != nil {
				groups = append(groups, *cur)
			}
			cur = &MatchGroup{Interval: m.Interval}
		}
		cur.Events = append(cur.Events, m.Event)
	}
	if cur != nil {
		groups = append(groups, *cur)
	}
	return groups
}
