// Package store keeps ingested datasets in memory. Persistence is out
// of scope for this service: datasets are bounded, materialized
// collections that live for the duration of the process, capped in
// number with oldest-first eviction.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/pdatalab/tripmatch-backend-go/internal/ingest"
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

// ErrNotFound is returned when a dataset ID is unknown (or evicted).
var ErrNotFound = errors.New("store: dataset not found")

// DefaultCap is the dataset cap used when none is configured.
const DefaultCap = 16

// Dataset is one ingested archive held in memory. The period slices are
// treated as immutable after ingestion; every reconciliation or audit
// run derives fresh structures from them.
type Dataset struct {
	ID        string
	Name      string
	CreatedAt time.Time

	Trips      []interval.Period
	Sessions   []interval.Period
	Dispatches []interval.Period

	TripsReport    ingest.SourceReport
	SessionsReport ingest.SourceReport
	// DispatchesReport is nil when the archive carried no dispatch table.
	DispatchesReport *ingest.SourceReport
}

// Store is a concurrency-safe in-memory dataset registry.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
	cap      int
}

// New creates a store holding at most cap datasets; cap <= 0 means
// DefaultCap.
func New(cap int) *Store {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Store{datasets: make(map[string]*Dataset), cap: cap}
}

// Put registers a dataset, evicting the oldest one when full.
func (s *Store) Put(d *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.datasets) >= s.cap {
		s.evictOldestLocked()
	}
	s.datasets[d.ID] = d
}

func (s *Store) evictOldestLocked() {
	var oldest *Dataset
	for _, d := range s.datasets {
		if oldest == nil || d.CreatedAt.Before(oldest.CreatedAt) {
			oldest = d
		}
	}
	if oldest != nil {
		delete(s.datasets, oldest.ID)
	}
}

// Get returns the dataset with the given ID.
func (s *Store) Get(id string) (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.datasets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// Delete removes a dataset; deleting an unknown ID reports ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.datasets[id]; !ok {
		return ErrNotFound
	}
	delete(s.datasets, id)
	return nil
}

// List returns all datasets, newest first.
func (s *Store) List() []*Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Dataset, 0, len(s.datasets))
	for _, d := range s.datasets {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of datasets held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.datasets)
}
