package interval

import "time"

// Tree is a static augmented interval tree over a fixed collection of
// periods: the sorted slice is treated as a balanced search tree on
// begin, with the maximum end instant of every subtree precomputed for
// pruning. Build is O(n log n); a query costs O(log n + hits). The tree
// is read-only after construction, so concurrent queries need no
// coordination.
type Tree struct {
	nodes  []Period
	maxEnd []time.Time
}

// NewTree builds a tree over intervals. Invalid periods (begin after
// end) are skipped; they can never contain an instant.
func NewTree(intervals []Period) *Tree {
	valid := make([]Period, 0, len(intervals))
	for _, p := range intervals {
		if p.Valid() {
			valid = append(valid, p)
		}
	}
	t := &Tree{
		nodes:  SortByBegin(valid),
		maxEnd: make([]time.Time, len(valid)),
	}
	t.build(0, len(t.nodes)-1)
	return t
}

// Len returns the number of indexed intervals.
func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) build(lo, hi int) time.Time {
	if lo > hi {
		return time.Time{}
	}
	mid := (lo + hi) / 2
	max := t.nodes[mid].End
	if left := t.build(lo, mid-1); left.After(max) {
		max = left
	}
	if right := t.build(mid+1, hi); right.After(max) {
		max = right
	}
	t.maxEnd[mid] = max
	return max
}

// Overlapping returns every indexed interval sharing at least one
// instant with the closed query range [begin, end], boundary touches
// included, in ascending-begin order.
func (t *Tree) Overlapping(begin, end time.Time) []Period {
	var out []Period
	t.query(0, len(t.nodes)-1, begin, end, &out)
	return out
}

// Stab returns every indexed interval containing the instant at, in
// ascending-begin order.
func (t *Tree) Stab(at time.Time) []Period {
	return t.Overlapping(at, at)
}

func (t *Tree) query(lo, hi int, qb, qe time.Time, out *[]Period) {
	if lo > hi {
		return
	}
	mid := (lo + hi) / 2
	// Nothing in this subtree ends at or after the query begin.
	if t.maxEnd[mid].Before(qb) {
		return
	}
	t.query(lo, mid-1, qb, qe, out)
	node := t.nodes[mid]
	if !node.Begin.After(qe) {
		if !node.End.Before(qb) {
			*out = append(*out, node)
		}
		// Right subtree begins at or after node.Begin, so it is only
		// worth visiting while node.Begin has not passed the query end.
		t.query(mid+1, hi, qb, qe, out)
	}
}

// MatchPair is one overlapping pair found by OverlapJoin: Left from the
// first collection, Right from the second.
type MatchPair struct {
	Left  Period
	Right Period
}

// OverlapJoin returns every pair (i, j), i from a and j from b, whose
// closed ranges intersect, including exact boundary touches. The result
// is ordered by b's input order, then ascending by a's begin. The join
// indexes a once and probes it per element of b, so cost is
// O((n+m) log n + pairs) rather than the n*m cross product.
func OverlapJoin(a, b []Period) []MatchPair {
	tree := NewTree(a)
	var out []MatchPair
	for _, q := range b {
		if !q.Valid() {
			continue
		}
		for _, hit := range tree.Overlapping(q.Begin, q.End) {
			out = append(out, MatchPair{Left: hit, Right: q})
		}
	}
	return out
}
