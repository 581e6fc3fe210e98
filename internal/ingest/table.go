package ingest

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"
)

// nullExpressions are the values the source CSVs use for missing data.
// They all normalize to the empty string.
var nullExpressions = map[string]struct{}{
	`\N`: {}, "NaN": {}, "NA": {}, "N/A": {},
}

// record is one CSV row keyed by column name, nulls normalized to "".
type record map[string]string

func (r record) isNull(col string) bool { return r[col] == "" }

func (r record) float(col string) (float64, error) {
	return strconv.ParseFloat(r[col], 64)
}

// timestampLayouts are tried in order when parsing a timestamp cell.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a cell as UTC and converts it to loc.
func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("ingest: unparseable timestamp %q", value)
}

// findFile returns the first archive member whose base name matches the
// glob pattern.
func findFile(zr *zip.Reader, pattern string) (*zip.File, error) {
	for _, f := range zr.File {
		ok, err := path.Match(pattern, path.Base(f.Name))
		if err != nil {
			return nil, fmt.Errorf("ingest: bad file pattern %q: %w", pattern, err)
		}
		if ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("ingest: no file matching %q in archive", pattern)
}

// readTable reads the first archive member matching pattern and returns
// its rows restricted to usecols, with null expressions normalized.
// Columns missing from the file are an error; extra columns are ignored.
func readTable(zr *zip.Reader, pattern string, usecols []string) ([]record, string, error) {
	f, err := findFile(zr, pattern)
	if err != nil {
		return nil, "", err
	}
	rc, err := f.Open()
	if err != nil {
		return nil, "", fmt.Errorf("ingest: open %s: %w", f.Name, err)
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, "", fmt.Errorf("ingest: read header of %s: %w", f.Name, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range usecols {
		if _, ok := index[col]; !ok {
			return nil, "", fmt.Errorf("ingest: %s has no column %q", f.Name, col)
		}
	}

	var rows []record
	for {
		raw, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("ingest: read %s: %w", f.Name, err)
		}
		row := make(record, len(usecols))
		for _, col := range usecols {
			i := index[col]
			if i >= len(raw) {
				row[col] = ""
				continue
			}
			value := strings.TrimSpace(raw[i])
			if _, null := nullExpressions[value]; null {
				value = ""
			}
			row[col] = value
		}
		rows = append(rows, row)
	}
	return rows, f.Name, nil
}
