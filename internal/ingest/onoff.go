package ingest

import (
	"archive/zip"
	"time"

	"github.com/google/uuid"

	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
	"github.com/pdatalab/tripmatch-backend-go/internal/spatial"
)

var onOffColumns = []string{
	"begin_timestamp_utc", "end_timestamp_utc", "earner_state",
	"begin_lat", "begin_lng", "end_lat", "end_lng",
}

// earnerStates maps the app's connectivity states onto status labels.
var earnerStates = map[string]interval.Status{
	"ontrip":   interval.StatusP3,
	"on trip":  interval.StatusP3,
	"enroute":  interval.StatusP2,
	"en route": interval.StatusP2,
	"open":     interval.StatusP1,
	"offline":  interval.StatusP0,
}

// LoadOnOff reads the Driver Online Offline table: one period per row,
// carrying the session's endpoint coordinates and a birdeye distance
// estimate. Rows with missing fields are dropped and counted; when the
// repair option is on, a missing end timestamp borrows the next row's
// begin before the row is given up on.
func LoadOnOff(zr *zip.Reader, opts Options) (*Result, error) {
	rows, file, err := readTable(zr, OnOffPattern, onOffColumns)
	if err != nil {
		return nil, err
	}
	loc := opts.location()
	report := SourceReport{File: file, RowsRead: len(rows)}

	if opts.RepairTimestamps {
		for i := range rows {
			if rows[i].isNull("end_timestamp_utc") && i+1 < len(rows) && !rows[i+1].isNull("begin_timestamp_utc") {
				rows[i]["end_timestamp_utc"] = rows[i+1]["begin_timestamp_utc"]
				report.Repaired++
			}
		}
	}

	var periods []interval.Period
	for _, row := range rows {
		p, ok := onOffPeriod(row, loc, opts.BirdeyeCoefficient)
		if !ok {
			report.Dropped++
			continue
		}
		periods = append(periods, p)
	}
	report.Periods = len(periods)
	return &Result{Periods: periods, Report: report}, nil
}

func onOffPeriod(row record, loc *time.Location, birdeyeCoefficient float64) (interval.Period, bool) {
	for _, col := range onOffColumns {
		if row.isNull(col) {
			return interval.Period{}, false
		}
	}
	status, ok := earnerStates[row["earner_state"]]
	if !ok {
		return interval.Period{}, false
	}
	begin, err := parseTimestamp(row["begin_timestamp_utc"], loc)
	if err != nil {
		return interval.Period{}, false
	}
	end, err := parseTimestamp(row["end_timestamp_utc"], loc)
	if err != nil {
		return interval.Period{}, false
	}

	beginLoc, err := parseLatLng(row, "begin_lat", "begin_lng")
	if err != nil {
		return interval.Period{}, false
	}
	endLoc, err := parseLatLng(row, "end_lat", "end_lng")
	if err != nil {
		return interval.Period{}, false
	}

	return interval.Period{
		ID:       uuid.NewString(),
		Begin:    begin,
		End:      end,
		Status:   status,
		BeginLoc: beginLoc,
		EndLoc:   endLoc,
		Attrs: map[string]any{
			"birdeye_distance_km": spatial.BirdeyeKm(*beginLoc, *endLoc, birdeyeCoefficient),
		},
	}, true
}

func parseLatLng(row record, latCol, lngCol string) (*interval.LatLng, error) {
	lat, err := row.float(latCol)
	if err != nil {
		return nil, err
	}
	lng, err := row.float(lngCol)
	if err != nil {
		return nil, err
	}
	return &interval.LatLng{Lat: lat, Lng: lng}, nil
}
