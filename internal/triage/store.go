package triage

import "context"

// Store is the persistence interface for triage results.
type Store interface {
	Get(ctx context.Context, id string) (*Result, bool, error)
	ListByPatient(ctx context.Context, patientID string, limit int) ([]*Result, error)
	Put(ctx context.Context, result *Result) error
}
