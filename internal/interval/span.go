package interval

import (
	"sort"
	"time"
)

// span is a time interval with explicit open/closed bound flags. The set
// algebra runs on spans so that priority subtraction can assign a shared
// boundary instant to exactly one status: [10:00,11:00] minus
// [10:30,10:45] is [10:00,10:30) and (10:45,11:00], which materialize as
// the closed periods [10:00,10:30] and [10:45,11:00] while the flagged
// representation stays exactly disjoint from the subtrahend.
type span struct {
	begin, end         time.Time
	beginOpen, endOpen bool
}

func closedSpan(begin, end time.Time) span {
	return span{begin: begin, end: end}
}

func (s span) empty() bool {
	if s.begin.After(s.end) {
		return true
	}
	return s.begin.Equal(s.end) && (s.beginOpen || s.endOpen)
}

// beginBefore orders begin bounds: at the same instant a closed bound
// comes before an open one.
func (s span) beginBefore(o span) bool {
	if !s.begin.Equal(o.begin) {
		return s.begin.Before(o.begin)
	}
	return !s.beginOpen && o.beginOpen
}

// endBefore orders end bounds: at the same instant an open bound comes
// before a closed one.
func (s span) endBefore(o span) bool {
	if !s.end.Equal(o.end) {
		return s.end.Before(o.end)
	}
	return s.endOpen && !o.endOpen
}

// laterBegin and earlierEnd pick the tighter bound of the two, used to
// compute intersections.
func laterBegin(a, b span) (time.Time, bool) {
	if a.beginBefore(b) {
		return b.begin, b.beginOpen
	}
	return a.begin, a.beginOpen
}

func earlierEnd(a, b span) (time.Time, bool) {
	if a.endBefore(b) {
		return a.end, a.endOpen
	}
	return b.end, b.endOpen
}

func intersectSpan(a, b span) span {
	out := span{}
	out.begin, out.beginOpen = laterBegin(a, b)
	out.end, out.endOpen = earlierEnd(a, b)
	return out
}

func spansOverlap(a, b span) bool {
	return !intersectSpan(a, b).empty()
}

// mergeable reports whether b can be coalesced into a, assuming a's begin
// bound is not after b's. Overlapping spans merge; spans touching at one
// instant merge unless both touching bounds are open.
func mergeable(a, b span) bool {
	if b.begin.Before(a.end) {
		return true
	}
	if b.begin.Equal(a.end) {
		return !(a.endOpen && b.beginOpen)
	}
	return false
}

// normalizeSpans sorts and coalesces spans into maximal disjoint,
// non-touching runs, dropping empty ones. This is the single sweep the
// interval-set builder relies on.
func normalizeSpans(spans []span) []span {
	live := make([]span, 0, len(spans))
	for _, s := range spans {
		if !s.empty() {
			live = append(live, s)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].beginBefore(live[j]) })
	out := make([]span, 0, len(live))
	cur := live[0]
	for _, s := range live[1:] {
		if mergeable(cur, s) {
			if cur.endBefore(s) {
				cur.end, cur.endOpen = s.end, s.endOpen
			}
			continue
		}
		out = append(out, cur)
		cur = s
	}
	return append(out, cur)
}

// subtractOne carves b out of a and returns the remaining pieces (zero,
// one or two spans). a must overlap b.
func subtractOne(a, b span) []span {
	var out []span
	left := span{begin: a.begin, beginOpen: a.beginOpen, end: b.begin, endOpen: !b.beginOpen}
	if !left.empty() {
		out = append(out, left)
	}
	right := span{begin: b.end, beginOpen: !b.endOpen, end: a.end, endOpen: a.endOpen}
	if !right.empty() {
		out = append(out, right)
	}
	return out
}

// subtractSpans computes as minus bs. Both inputs must be normalized
// (sorted, disjoint); the sweep advances through bs once.
func subtractSpans(as, bs []span) []span {
	var out []span
	j := 0
	for _, a := range as {
		// bs ending strictly before this span can never overlap later spans either.
		for j < len(bs) && bs[j].end.Before(a.begin) {
			j++
		}
		rest := a
		done := false
		for k := j; k < len(bs); k++ {
			if bs[k].begin.After(rest.end) {
				break
			}
			if !spansOverlap(bs[k], rest) {
				continue
			}
			pieces := subtractOne(rest, bs[k])
			switch len(pieces) {
			case 0:
				done = true
			case 1:
				if pieces[0].endBefore(bs[k]) {
					// only the left piece remains
					out = append(out, pieces[0])
					done = true
				} else {
					rest = pieces[0]
				}
			case 2:
				out = append(out, pieces[0])
				rest = pieces[1]
			}
			if done {
				break
			}
		}
		if !done {
			out = append(out, rest)
		}
	}
	return out
}

// spansIntersect reports whether any span of as overlaps any span of bs.
// Both inputs must be normalized.
func spansIntersect(as, bs []span) bool {
	i, j := 0, 0
	for i < len(as) && j < len(bs) {
		if spansOverlap(as[i], bs[j]) {
			return true
		}
		if as[i].endBefore(bs[j]) {
			i++
		} else {
			j++
		}
	}
	return false
}
