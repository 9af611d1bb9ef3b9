package audit

import (
	"context"
	"sync"
)

// MemoryRecorder keeps audit entries in memory. Suitable for dev/testing.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryRecorder initializes an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record stores a copy of the entry.
func (r *MemoryRecorder) Record(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

// Entries returns a snapshot of all recorded entries.
func (r *MemoryRecorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// NopRecorder discards every entry.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(context.Context, *Entry) error { return nil }
