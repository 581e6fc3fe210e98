package interval

import (
	"errors"
	"sort"
	"time"
)

// ErrArityMismatch is the configuration error returned when the number of
// metadata functions does not match the number of generated periods (N-1
// for N timestamp columns).
var ErrArityMismatch = errors.New("interval: number of metadata functions must equal number of timestamp columns minus one")

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Period is a closed time interval [Begin, End] tagged with a status and
// arbitrary source metadata. A Period with Begin == End is a degenerate
// (zero-length) period and is still meaningful; a Period with Begin after
// End is invalid and is excluded (but counted) by BuildPartition.
type Period struct {
	// ID is a bookkeeping identifier assigned by the ingestion layer so
	// that exports can join results back to source rows. The core never
	// generates or interprets it.
	ID       string
	Begin    time.Time
	End      time.Time
	Status   Status
	BeginLoc *LatLng
	EndLoc   *LatLng
	Attrs    map[string]any
}

// Valid reports whether the period's bounds are ordered.
func (p Period) Valid() bool {
	return !p.Begin.After(p.End)
}

// Duration returns End - Begin.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Begin)
}

// Contains reports whether t falls within the closed bounds of p.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Begin) && !t.After(p.End)
}

// Overlaps reports whether p and q share at least one instant. Exact
// boundary touches count (closed-closed semantics).
func (p Period) Overlaps(q Period) bool {
	return !p.Begin.After(q.End) && !q.Begin.After(p.End)
}

// SameBounds reports whether p and q have equal begin and end instants.
// Two intervals with equal bounds are treated as the same interval by the
// auditor's grouping.
func (p Period) SameBounds(q Period) bool {
	return p.Begin.Equal(q.Begin) && p.End.Equal(q.End)
}

// SortByBegin returns a copy of ps sorted ascending by begin, then end.
// The matcher and auditor require this ordering.
func SortByBegin(ps []Period) []Period {
	out := make([]Period, len(ps))
	copy(out, ps)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Begin.Equal(out[j].Begin) {
			return out[i].Begin.Before(out[j].Begin)
		}
		return out[i].End.Before(out[j].End)
	})
	return out
}

// Row is one ingested record: named status-change instants plus the raw
// source fields metadata functions may want to look at.
type Row struct {
	Times  map[string]time.Time
	Fields map[string]any
}

// PeriodMeta is what a metadata function contributes to one generated
// period: its status, optional endpoint locations and extra attributes.
type PeriodMeta struct {
	Status   Status
	BeginLoc *LatLng
	EndLoc   *LatLng
	Attrs    map[string]any
}

// MetaFunc derives the metadata of one generated period from its source row.
type MetaFunc func(Row) PeriodMeta

// BuildPeriods converts a row carrying K ordered status-change instants
// (named by columns) into K-1 contiguous periods: period i spans from
// columns[i] to columns[i+1] and carries the metadata produced by
// extras[i]. The arity of columns and extras is a configuration error,
// not a data error. Timestamp ordering is deliberately not validated
// here: a row with out-of-order instants yields a period with Begin after
// End, which BuildPartition later excludes and reports.
func BuildPeriods(row Row, columns []string, extras []MetaFunc) ([]Period, error) {
	if len(columns) < 2 || len(extras) != len(columns)-1 {
		return nil, ErrArityMismatch
	}
	periods := make([]Period, 0, len(extras))
	for i, fn := range extras {
		meta := fn(row)
		periods = append(periods, Period{
			Begin:    row.Times[columns[i]],
			End:      row.Times[columns[i+1]],
			Status:   meta.Status,
			BeginLoc: meta.BeginLoc,
			EndLoc:   meta.EndLoc,
			Attrs:    meta.Attrs,
		})
	}
	return periods, nil
}

// BuildPeriodTable applies BuildPeriods to every row, preserving row
// order in the output. The arity check runs once, up front, so a
// misconfiguration fails before any row is processed.
func BuildPeriodTable(rows []Row, columns []string, extras []MetaFunc) ([]Period, error) {
	if len(columns) < 2 || len(extras) != len(columns)-1 {
		return nil, ErrArityMismatch
	}
	periods := make([]Period, 0, len(rows)*len(extras))
	for _, row := range rows {
		ps, err := BuildPeriods(row, columns, extras)
		if err != nil {
			return nil, err
		}
		periods = append(periods, ps...)
	}
	return periods, nil
}
