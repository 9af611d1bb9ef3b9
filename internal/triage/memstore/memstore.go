// Package memstore provides an in-memory implementation of triage.Store.
package memstore

import (
	"context"
	"sync"

	"github.com/linnemanlabs/sahayak/internal/triage"
)

// Store holds triage results in memory. Suitable for dev/testing.
type Store struct {
	mu        sync.RWMutex
	results   map[string]*triage.Result // result ID -> result
	byPatient map[string][]string       // patient ID -> result IDs, insertion order
}

// New initializes a new in-memory Store.
func New() *Store {
	return &Store{
		results:   make(map[string]*triage.Result),
		byPatient: make(map[string][]string),
	}
}

// Get retrieves a triage result by its ID. Returns a copy.
func (s *Store) Get(_ context.Context, id string) (*triage.Result, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[id]
	if !ok {
		return nil, false, nil
	}
	cp := *r
	return &cp, true, nil
}

// ListByPatient returns up to limit results for a patient, newest first.
// A limit <= 0 means no limit.
func (s *Store) ListByPatient(_ context.Context, patientID string, limit int) ([]*triage.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byPatient[patientID]
	out := make([]*triage.Result, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		cp := *s.results[ids[i]]
		out = append(out, &cp)
	}
	return out, nil
}

// Put stores a copy of the triage result.
func (s *Store) Put(_ context.Context, r *triage.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.results[r.ID]
	cp := *r
	s.results[r.ID] = &cp
	if !existed && r.PatientID != "" {
		s.byPatient[r.PatientID] = append(s.byPatient[r.PatientID], r.ID)
	}
	return nil
}
