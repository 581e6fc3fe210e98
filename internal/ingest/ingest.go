// Package ingest reads the CSV files of a driver data-subject-access
// archive and turns them into period tables for the interval engine.
// All timestamp normalization, null repair and bookkeeping-ID assignment
// happens here; the engine itself never sees raw rows.
package ingest

import (
	"time"

	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
	"github.com/pdatalab/tripmatch-backend-go/internal/spatial"
)

// File patterns of the two source tables inside the archive.
const (
	OnOffPattern = "*Driver Online Offline.csv"
	TripsPattern = "*Driver Lifetime Trips.csv"
)

const kmPerMile = 1.609344

// Options configures one ingestion run. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Timezone all timestamps are converted into after UTC parsing.
	Timezone *time.Location
	// BirdeyeCoefficient scales the geodesic endpoint distance attached
	// to connectivity sessions.
	BirdeyeCoefficient float64
	// RepairTimestamps enables the null-timestamp repair: a session row
	// with no end timestamp borrows the next row's begin, and a trip row
	// with no pickup or dropoff timestamp borrows the next row's pickup.
	// The repair is a heuristic over adjacent, possibly unrelated rows,
	// so it is off unless a caller opts in, and repaired rows are always
	// counted.
	RepairTimestamps bool
}

// DefaultOptions returns the standard ingestion configuration.
func DefaultOptions() Options {
	return Options{
		Timezone:           time.UTC,
		BirdeyeCoefficient: spatial.DefaultBirdeyeCoefficient,
	}
}

func (o Options) location() *time.Location {
	if o.Timezone == nil {
		return time.UTC
	}
	return o.Timezone
}

// SourceReport accounts for what happened to one source table's rows.
// Dropped and repaired rows are data-quality signal surfaced to the
// caller; they never abort a run.
type SourceReport struct {
	File     string `json:"file"`
	RowsRead int    `json:"rows_read"`
	Dropped  int    `json:"dropped"`
	Repaired int    `json:"repaired"`
	Periods  int    `json:"periods"`
}

// Result is one ingested source: its periods plus the report.
type Result struct {
	Periods []interval.Period
	Report  SourceReport
}

func mileToKm(miles float64) float64 {
	return miles * kmPerMile
}
