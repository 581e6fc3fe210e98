package models

import "time"

// FusionRow is one overlapping session×trip pair of the bulk overlap
// join, flattened with both sides' bounds and the shared range.
type FusionRow struct {
	SessionID    string    `json:"session_id"`
	SessionBegin time.Time `json:"session_begin"`
	SessionEnd   time.Time `json:"session_end"`
	SessionLabel string    `json:"session_label"`

	TripID    string    `json:"trip_id"`
	TripBegin time.Time `json:"trip_begin"`
	TripEnd   time.Time `json:"trip_end"`
	TripLabel string    `json:"trip_label"`

	OverlapBegin time.Time `json:"overlap_begin"`
	OverlapEnd   time.Time `json:"overlap_end"`
	OverlapHours float64   `json:"overlap_hours"`
}

// FusionResult is the response of one fusion run.
type FusionResult struct {
	DatasetID string      `json:"dataset_id"`
	Rows      []FusionRow `json:"rows"`
}
