package service

import (
	"github.com/rs/zerolog"

	"github.com/pdatalab/tripmatch-backend-go/internal/export"
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
	"github.com/pdatalab/tripmatch-backend-go/internal/models"
	"github.com/pdatalab/tripmatch-backend-go/internal/store"
)

// FusionService joins a dataset's two sources into the fusion table:
// every connectivity session paired with every trip interval it
// overlaps, both sides' columns preserved.
type FusionService struct {
	store *store.Store
	log   zerolog.Logger
}

// NewFusionService creates a fusion service.
func NewFusionService(st *store.Store, log zerolog.Logger) *FusionService {
	return &FusionService{store: st, log: log}
}

// Fusion runs the bulk overlap join for one dataset.
func (s *FusionService) Fusion(id string) (*models.FusionResult, error) {
	rows, err := s.Rows(id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("dataset", id).Int("pairs", len(rows)).Msg("fusion complete")
	return &models.FusionResult{DatasetID: id, Rows: rows}, nil
}

// Rows runs the join and returns the flattened pairs, for callers that
// serialize them directly (exports, CLI).
func (s *FusionService) Rows(id string) ([]models.FusionRow, error) {
	d, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return export.FusionRows(interval.OverlapJoin(d.Sessions, d.Trips)), nil
}
