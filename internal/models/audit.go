package models

import "time"

// AuditEvent is one matched endpoint event: which side of which source
// period landed inside the destination interval, and where it was
// recorded.
type AuditEvent struct {
	Date     time.Time `json:"date"`
	IsBegin  bool      `json:"is_begin"`
	Lat      *float64  `json:"lat,omitempty"`
	Lng      *float64  `json:"lng,omitempty"`
	SourceID string    `json:"source_id"`
}

// AuditGroup collects the events caught by one destination interval.
// Suspect groups caught fewer than two events: a session whose begin or
// end was never observed inside the trip record, or vice versa.
type AuditGroup struct {
	IntervalID string       `json:"interval_id"`
	Begin      time.Time    `json:"begin"`
	End        time.Time    `json:"end"`
	Events     []AuditEvent `json:"events"`
	Suspect    bool         `json:"suspect"`
}

// AuditResult is the response of one audit run.
type AuditResult struct {
	DatasetID    string       `json:"dataset_id"`
	Groups       []AuditGroup `json:"groups"`
	SuspectCount int          `json:"suspect_count"`
}
