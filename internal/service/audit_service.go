package service

import (
	"github.com/rs/zerolog"

	"github.com/pdatalab/tripmatch-backend-go/internal/export"
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
	"github.com/pdatalab/tripmatch-backend-go/internal/models"
	"github.com/pdatalab/tripmatch-backend-go/internal/store"
)

// AuditService cross-validates a dataset's two sources: the endpoints
// of every connectivity session are matched against the trip intervals,
// surfacing trips whose begin or end the app never observed.
type AuditService struct {
	store *store.Store
	log   zerolog.Logger
}

// NewAuditService creates an audit service.
func NewAuditService(st *store.Store, log zerolog.Logger) *AuditService {
	return &AuditService{store: st, log: log}
}

// Audit runs the endpoint-event audit for one dataset.
func (s *AuditService) Audit(id string) (*models.AuditResult, error) {
	groups, err := s.Groups(id)
	if err != nil {
		return nil, err
	}
	result := &models.AuditResult{
		DatasetID: id,
		Groups:    export.AuditGroups(groups),
	}
	for _, g := range result.Groups {
		if g.Suspect {
			result.SuspectCount++
		}
	}
	s.log.Info().
		Str("dataset", id).
		Int("groups", len(result.Groups)).
		Int("suspect", result.SuspectCount).
		Msg("audit complete")
	return result, nil
}

// Groups runs the audit and returns the engine's match groups.
func (s *AuditService) Groups(id string) ([]interval.MatchGroup, error) {
	d, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return interval.Audit(d.Sessions, d.Trips), nil
}
