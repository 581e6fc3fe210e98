package interval

// ReconcileOptions selects the priority policy for merging two
// partitions. The zero value uses DefaultPriority with P0Priority off.
type ReconcileOptions struct {
	// Priority lists statuses in descending priority order. Statuses not
	// listed are dropped from the result. Nil means DefaultPriority.
	Priority []Status
	// P0Priority makes the second source's lowest-priority set override
	// everything else before the standard cascade runs: its intervals are
	// subtracted from every other label of both sources, including the
	// second source's own. This asymmetry is deliberate; it models a
	// source whose idle signal is authoritative.
	P0Priority bool
}

func (o ReconcileOptions) priority() []Status {
	if len(o.Priority) == 0 {
		return DefaultPriority
	}
	return o.Priority
}

// Reconcile merges two status partitions recorded by independent sources
// into one timeline where every instant carries at most one status.
// Same-label sets are unioned across sources, then each label has all
// strictly higher-priority results subtracted from it, in descending
// priority order, so the output partition is pairwise disjoint. Labels
// that end up empty are absent from the result. Neither input is
// mutated.
func Reconcile(a, b StatusPartition, opts ReconcileOptions) StatusPartition {
	prio := opts.priority()
	getA, getB := a.Get, b.Get

	if opts.P0Priority {
		lowest := prio[len(prio)-1]
		override := b.Get(lowest)
		getA = func(s Status) IntervalSet {
			if s == lowest {
				return a.Get(s)
			}
			return a.Get(s).Subtract(override)
		}
		getB = func(s Status) IntervalSet {
			if s == lowest {
				return b.Get(s)
			}
			return b.Get(s).Subtract(override)
		}
	}

	out := make(StatusPartition, len(prio))
	var claimed IntervalSet // union of all higher-priority results so far
	for i, label := range prio {
		combined := getA(label).Union(getB(label))
		resolved := combined.Subtract(claimed)
		if !resolved.Empty() {
			out[label] = resolved
		}
		if i < len(prio)-1 {
			claimed = claimed.Union(resolved)
		}
	}
	return out
}
