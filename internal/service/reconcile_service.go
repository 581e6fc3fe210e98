package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdatalab/tripmatch-backend-go/internal/export"
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
	"github.com/pdatalab/tripmatch-backend-go/internal/models"
	"github.com/pdatalab/tripmatch-backend-go/internal/stats"
	"github.com/pdatalab/tripmatch-backend-go/internal/store"
)

// ErrInvalidPriority marks a reconcile request naming an unknown status
// label; handlers map it to a client error.
var ErrInvalidPriority = errors.New("invalid priority order")

// ReconcileService runs priority reconciliations over stored datasets.
type ReconcileService struct {
	store *store.Store
	log   zerolog.Logger
}

// NewReconcileService creates a reconcile service.
func NewReconcileService(st *store.Store, log zerolog.Logger) *ReconcileService {
	return &ReconcileService{store: st, log: log}
}

// Reconcile merges a dataset's two sources into one consistent timeline
// under the requested priority policy.
func (s *ReconcileService) Reconcile(id string, req models.ReconcileRequest) (*models.ReconcileResult, error) {
	part, invalid, err := s.Partition(id, req)
	if err != nil {
		return nil, err
	}
	return &models.ReconcileResult{
		DatasetID:      id,
		Rows:           export.TimelineRows(part),
		TotalsHours:    stats.TotalsByLabel(part),
		Disjoint:       part.Disjoint(),
		InvalidPeriods: invalid,
	}, nil
}

// Partition runs the reconciliation and returns the raw partition plus
// the number of source periods excluded for inverted bounds, for
// callers that render the partition themselves (exports).
func (s *ReconcileService) Partition(id string, req models.ReconcileRequest) (interval.StatusPartition, int, error) {
	d, err := s.store.Get(id)
	if err != nil {
		return nil, 0, err
	}
	prio, err := parsePriority(req.Priority)
	if err != nil {
		return nil, 0, err
	}

	trips, tripsReport := interval.BuildPartition(d.Trips)
	sessions, sessionsReport := interval.BuildPartition(d.Sessions)
	invalid := len(tripsReport.Invalid) + len(sessionsReport.Invalid)
	if invalid > 0 {
		s.log.Warn().Str("dataset", id).Int("invalid_periods", invalid).Msg("excluded invalid periods")
	}

	return interval.Reconcile(trips, sessions, interval.ReconcileOptions{
		Priority:   prio,
		P0Priority: req.P0Priority,
	}), invalid, nil
}

func parsePriority(labels []string) ([]interval.Status, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	out := make([]interval.Status, 0, len(labels))
	seen := make(map[interval.Status]bool, len(labels))
	for _, label := range labels {
		status, err := interval.ParseStatus(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPriority, err)
		}
		if seen[status] {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidPriority, label)
		}
		seen[status] = true
		out = append(out, status)
	}
	return out, nil
}
