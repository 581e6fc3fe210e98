package ingest

import (
	"archive/zip"
	"io"
)

// Archive is a fully ingested data archive: the trips source, the
// connectivity (online/offline session) source, and the optional
// dispatch-windows table when the archive carries it.
type Archive struct {
	Trips      *Result
	Sessions   *Result
	Dispatches *Result
}

// LoadArchive ingests the source tables from a zip archive. Trips and
// sessions are required; dispatches are loaded only when present.
func LoadArchive(zr *zip.Reader, opts Options) (*Archive, error) {
	trips, err := LoadTrips(zr, opts)
	if err != nil {
		return nil, err
	}
	sessions, err := LoadOnOff(zr, opts)
	if err != nil {
		return nil, err
	}
	arch := &Archive{Trips: trips, Sessions: sessions}
	if HasDispatches(zr) {
		if arch.Dispatches, err = LoadDispatches(zr, opts); err != nil {
			return nil, err
		}
	}
	return arch, nil
}

// LoadArchiveReader ingests both sources from zip bytes held in r.
func LoadArchiveReader(r io.ReaderAt, size int64, opts Options) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return LoadArchive(zr, opts)
}
