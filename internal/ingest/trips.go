package ingest

import (
	"archive/zip"
	"time"

	"github.com/google/uuid"

	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

var tripColumns = []string{
	"request_timestamp_utc", "begintrip_timestamp_utc", "dropoff_timestamp_utc",
	"status", "request_to_begin_distance_miles", "trip_distance_miles", "original_fare_local",
}

var tripTimestampColumns = []string{
	"request_timestamp_utc", "begintrip_timestamp_utc", "dropoff_timestamp_utc",
}

// LoadTrips reads the Driver Lifetime Trips table. Each completed trip
// row carries three ordered instants (request, pickup, dropoff) and
// becomes two periods: en route (P2) from request to pickup, on trip
// (P3) from pickup to dropoff, with distances converted to kilometers
// and the fare attached to the on-trip period.
func LoadTrips(zr *zip.Reader, opts Options) (*Result, error) {
	tbl, file, err := readTable(zr, TripsPattern, tripColumns)
	if err != nil {
		return nil, err
	}
	loc := opts.location()
	report := SourceReport{File: file, RowsRead: len(tbl)}

	if opts.RepairTimestamps {
		for i := range tbl {
			if i+1 >= len(tbl) || tbl[i+1].isNull("begintrip_timestamp_utc") {
				continue
			}
			rescue := tbl[i+1]["begintrip_timestamp_utc"]
			for _, col := range []string{"begintrip_timestamp_utc", "dropoff_timestamp_utc"} {
				if tbl[i].isNull(col) {
					tbl[i][col] = rescue
					report.Repaired++
				}
			}
		}
	}

	var rows []interval.Row
	for _, rec := range tbl {
		if rec["status"] != "completed" {
			report.Dropped++
			continue
		}
		row := interval.Row{Times: map[string]time.Time{}, Fields: map[string]any{"row_id": uuid.NewString()}}
		ok := true
		for _, col := range tripTimestampColumns {
			if rec.isNull(col) {
				ok = false
				break
			}
			t, err := parseTimestamp(rec[col], loc)
			if err != nil {
				ok = false
				break
			}
			row.Times[col] = t
		}
		if ok {
			for _, col := range []string{"request_to_begin_distance_miles", "trip_distance_miles", "original_fare_local"} {
				if rec.isNull(col) {
					continue
				}
				v, err := rec.float(col)
				if err != nil {
					ok = false
					break
				}
				row.Fields[col] = v
			}
		}
		if !ok {
			report.Dropped++
			continue
		}
		rows = append(rows, row)
	}

	periods, err := interval.BuildPeriodTable(rows, tripTimestampColumns, []interval.MetaFunc{
		func(r interval.Row) interval.PeriodMeta {
			return interval.PeriodMeta{Status: interval.StatusP2, Attrs: tripAttrs(r, "request_to_begin_distance_miles", false)}
		},
		func(r interval.Row) interval.PeriodMeta {
			return interval.PeriodMeta{Status: interval.StatusP3, Attrs: tripAttrs(r, "trip_distance_miles", true)}
		},
	})
	if err != nil {
		return nil, err
	}
	for i := range periods {
		periods[i].ID = uuid.NewString()
	}
	report.Periods = len(periods)
	return &Result{Periods: periods, Report: report}, nil
}

func tripAttrs(r interval.Row, distanceCol string, withFare bool) map[string]any {
	attrs := map[string]any{"row_id": r.Fields["row_id"]}
	if miles, ok := r.Fields[distanceCol].(float64); ok {
		attrs["distance_km"] = mileToKm(miles)
	}
	if withFare {
		if fare, ok := r.Fields["original_fare_local"].(float64); ok {
			attrs["uber_paid"] = fare
		}
	}
	return attrs
}
