package models

import "time"

// ReconcileRequest selects the reconciliation policy for one run.
type ReconcileRequest struct {
	// Priority lists status labels in descending priority order, e.g.
	// ["P3","P2","P1","P0"]. Empty means the default order.
	Priority []string `json:"priority"`
	// P0Priority lets the connectivity source's offline intervals
	// override every other status.
	P0Priority bool `json:"p0_priority"`
}

// TimelineRow is one interval of a reconciled timeline, flattened for
// transport and export, with the time-property facets attached.
type TimelineRow struct {
	Begin         time.Time `json:"begin"`
	End           time.Time `json:"end"`
	Label         string    `json:"label"`
	DurationHours float64   `json:"duration_hours"`
	DayOfWeek     string    `json:"day_of_week"`
	DayType       string    `json:"day_type"`
	Sunday        string    `json:"sunday"`
	TimeOfDay     string    `json:"time_of_day"`
	Night         string    `json:"night"`
}

// ReconcileResult is the response of one reconciliation run.
type ReconcileResult struct {
	DatasetID   string             `json:"dataset_id"`
	Rows        []TimelineRow      `json:"rows"`
	TotalsHours map[string]float64 `json:"totals_hours"`
	Disjoint    bool               `json:"disjoint"`
	// InvalidPeriods counts source periods excluded for inverted bounds.
	InvalidPeriods int `json:"invalid_periods"`
}
