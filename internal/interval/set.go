package interval

import "sort"

// IntervalSet is the merged timeline of a single status: a normalized
// sequence of disjoint, non-touching spans. Operations never mutate the
// receiver; every algebraic step returns a new set, so a reconciliation
// can be re-run with different options against the same inputs.
type IntervalSet struct {
	status Status
	spans  []span
}

// NewIntervalSet merges periods of one status into maximal runs. Periods
// are treated as closed intervals: [a,b] and [b,c] coalesce into [a,c],
// and a degenerate [b,b] touching a run's boundary extends it. Periods
// carrying a different status or invalid bounds are ignored; callers
// wanting those reported should go through BuildPartition.
func NewIntervalSet(status Status, periods []Period) IntervalSet {
	spans := make([]span, 0, len(periods))
	for _, p := range periods {
		if p.Status != status || !p.Valid() {
			continue
		}
		spans = append(spans, closedSpan(p.Begin, p.End))
	}
	return IntervalSet{status: status, spans: normalizeSpans(spans)}
}

// Status returns the status label common to all member intervals.
func (s IntervalSet) Status() Status { return s.status }

// Len returns the number of merged runs.
func (s IntervalSet) Len() int { return len(s.spans) }

// Empty reports whether the set covers no instant.
func (s IntervalSet) Empty() bool { return len(s.spans) == 0 }

// Periods materializes the set as closed periods in ascending order.
// Open bound flags produced by subtraction are dropped here: the rendered
// period keeps the boundary instant (closed-interval truncation).
func (s IntervalSet) Periods() []Period {
	out := make([]Period, 0, len(s.spans))
	for _, sp := range s.spans {
		out = append(out, Period{Begin: sp.begin, End: sp.end, Status: s.status})
	}
	return out
}

// Union returns the set covering every instant of s or o. The result
// keeps the receiver's status.
func (s IntervalSet) Union(o IntervalSet) IntervalSet {
	merged := make([]span, 0, len(s.spans)+len(o.spans))
	merged = append(merged, s.spans...)
	merged = append(merged, o.spans...)
	return IntervalSet{status: s.status, spans: normalizeSpans(merged)}
}

// Subtract returns the instants of s not covered by o. Boundary instants
// of o are removed exactly: the remainders are open where they meet o,
// though they render closed (see Periods).
func (s IntervalSet) Subtract(o IntervalSet) IntervalSet {
	return IntervalSet{status: s.status, spans: subtractSpans(s.spans, o.spans)}
}

// Intersects reports whether s and o share any instant. Unlike the
// closed-period Overlaps, this respects open bounds, so two reconciled
// sets that merely render a shared boundary instant do not intersect.
func (s IntervalSet) Intersects(o IntervalSet) bool {
	return spansIntersect(s.spans, o.spans)
}

// StatusPartition maps each status present on a timeline to its merged
// interval set. After reconciliation the sets are pairwise disjoint; an
// instant with no status from any source is simply absent.
type StatusPartition map[Status]IntervalSet

// BuildReport accounts for periods excluded while building a partition.
// Invalid periods (begin after end) are data-quality signal, not errors:
// they are kept inspectable here rather than silently dropped.
type BuildReport struct {
	Total   int
	Invalid []Period
}

// BuildPartition groups periods by status and merges each group into an
// IntervalSet. Invalid periods are excluded from every set and returned
// in the report. Building is idempotent: re-building from the flattened
// output yields an equal partition.
func BuildPartition(periods []Period) (StatusPartition, BuildReport) {
	report := BuildReport{Total: len(periods)}
	byStatus := make(map[Status][]span)
	for _, p := range periods {
		if !p.Valid() {
			report.Invalid = append(report.Invalid, p)
			continue
		}
		byStatus[p.Status] = append(byStatus[p.Status], closedSpan(p.Begin, p.End))
	}
	part := make(StatusPartition, len(byStatus))
	for status, spans := range byStatus {
		part[status] = IntervalSet{status: status, spans: normalizeSpans(spans)}
	}
	return part, report
}

// Labels returns the statuses present, in ascending priority order.
// Partition consumers iterate through this instead of ranging over the
// map so output stays deterministic.
func (p StatusPartition) Labels() []Status {
	labels := make([]Status, 0, len(p))
	for s := range p {
		labels = append(labels, s)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// Get returns the set for a status, or an empty set carrying that status.
func (p StatusPartition) Get(s Status) IntervalSet {
	if set, ok := p[s]; ok {
		return set
	}
	return IntervalSet{status: s}
}

// Flatten materializes every set, ordered by begin instant then status.
func (p StatusPartition) Flatten() []Period {
	var out []Period
	for _, label := range p.Labels() {
		out = append(out, p[label].Periods()...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Begin.Equal(out[j].Begin) {
			return out[i].Begin.Before(out[j].Begin)
		}
		return out[i].Status < out[j].Status
	})
	return out
}

// Disjoint reports whether all sets of the partition are pairwise
// disjoint, the invariant every reconciled partition must satisfy.
func (p StatusPartition) Disjoint() bool {
	labels := p.Labels()
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			if p[labels[i]].Intersects(p[labels[j]]) {
				return false
			}
		}
	}
	return true
}
