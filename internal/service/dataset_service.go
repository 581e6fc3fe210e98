package service

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdatalab/tripmatch-backend-go/internal/ingest"
	"github.com/pdatalab/tripmatch-backend-go/internal/models"
	"github.com/pdatalab/tripmatch-backend-go/internal/store"
)

// DatasetService ingests uploaded archives and manages the dataset
// registry.
type DatasetService struct {
	store *store.Store
	opts  ingest.Options
	log   zerolog.Logger
}

// NewDatasetService creates a dataset service. opts is the ingestion
// configuration applied to every upload.
func NewDatasetService(st *store.Store, opts ingest.Options, log zerolog.Logger) *DatasetService {
	return &DatasetService{store: st, opts: opts, log: log}
}

// Ingest reads a zip archive, ingests both source tables and registers
// the dataset.
func (s *DatasetService) Ingest(r io.ReaderAt, size int64, name string) (*store.Dataset, error) {
	arch, err := ingest.LoadArchiveReader(r, size, s.opts)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", name, err)
	}

	d := &store.Dataset{
		ID:             uuid.NewString(),
		Name:           name,
		CreatedAt:      time.Now().UTC(),
		Trips:          arch.Trips.Periods,
		Sessions:       arch.Sessions.Periods,
		TripsReport:    arch.Trips.Report,
		SessionsReport: arch.Sessions.Report,
	}
	if arch.Dispatches != nil {
		d.Dispatches = arch.Dispatches.Periods
		report := arch.Dispatches.Report
		d.DispatchesReport = &report
	}
	s.store.Put(d)

	s.log.Info().
		Str("dataset", d.ID).
		Str("name", name).
		Int("trip_periods", len(d.Trips)).
		Int("session_periods", len(d.Sessions)).
		Int("dropped", d.TripsReport.Dropped+d.SessionsReport.Dropped).
		Int("repaired", d.SessionsReport.Repaired).
		Msg("dataset ingested")
	return d, nil
}

// Get returns one dataset.
func (s *DatasetService) Get(id string) (*store.Dataset, error) {
	return s.store.Get(id)
}

// Delete removes one dataset.
func (s *DatasetService) Delete(id string) error {
	return s.store.Delete(id)
}

// List returns metadata for all datasets, newest first.
func (s *DatasetService) List() []models.DatasetMeta {
	datasets := s.store.List()
	out := make([]models.DatasetMeta, 0, len(datasets))
	for _, d := range datasets {
		out = append(out, Meta(d))
	}
	return out
}

// Meta flattens a dataset into its API metadata.
func Meta(d *store.Dataset) models.DatasetMeta {
	return models.DatasetMeta{
		ID:         d.ID,
		Name:       d.Name,
		CreatedAt:  d.CreatedAt,
		Trips:      d.TripsReport,
		Sessions:   d.SessionsReport,
		Dispatches: d.DispatchesReport,
	}
}
