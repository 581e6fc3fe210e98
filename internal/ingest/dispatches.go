package ingest

import (
	"archive/zip"
	"path"

	"github.com/google/uuid"

	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

// DispatchesPattern matches the optional dispatch-windows table.
const DispatchesPattern = "*Driver Dispatches Offered and Accepted.csv"

var dispatchColumns = []string{
	"start_timestamp_utc", "end_timestamp_utc",
	"minutes_online", "minutes_active", "minutes_on_trip",
}

// HasDispatches reports whether the archive carries the dispatches table.
func HasDispatches(zr *zip.Reader) bool {
	for _, f := range zr.File {
		if ok, _ := path.Match(DispatchesPattern, path.Base(f.Name)); ok {
			return true
		}
	}
	return false
}

// LoadDispatches ingests the dispatch-windows table. Each row is the
// window a dispatch offer covered, with the driver's online/active/
// on-trip minutes inside it attached as attributes. The windows carry
// the en-route status: they describe dispatch activity, not completed
// trips, and are kept out of reconciliation by default.
func LoadDispatches(zr *zip.Reader, opts Options) (*Result, error) {
	rows, file, err := readTable(zr, DispatchesPattern, dispatchColumns)
	if err != nil {
		return nil, err
	}
	loc := opts.location()

	res := &Result{Report: SourceReport{File: file, RowsRead: len(rows)}}
	for _, row := range rows {
		if row.isNull("start_timestamp_utc") || row.isNull("end_timestamp_utc") {
			res.Report.Dropped++
			continue
		}
		begin, err := parseTimestamp(row["start_timestamp_utc"], loc)
		if err != nil {
			res.Report.Dropped++
			continue
		}
		end, err := parseTimestamp(row["end_timestamp_utc"], loc)
		if err != nil {
			res.Report.Dropped++
			continue
		}

		attrs := make(map[string]any, 3)
		for _, col := range []string{"minutes_online", "minutes_active", "minutes_on_trip"} {
			if row.isNull(col) {
				continue
			}
			if v, err := row.float(col); err == nil {
				attrs[col] = v
			}
		}
		res.Periods = append(res.Periods, interval.Period{
			ID:     uuid.NewString(),
			Begin:  begin,
			End:    end,
			Status: interval.StatusP2,
			Attrs:  attrs,
		})
	}
	res.Report.Periods = len(res.Periods)
	return res, nil
}
