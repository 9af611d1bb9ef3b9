package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
	"github.com/linnemanlabs/sahayak/internal/triage"
)

func TestStore_PutAndGet(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	r := &triage.Result{ID: "t-1", PatientID: "p-1", Status: triage.StatusComplete, Level: knowledge.LevelMedium}
	if err := s.Put(ctx, r); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(ctx, "t-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected result to be found")
	}
	if got.ID != "t-1" {
		t.Errorf("ID = %q, want %q", got.ID, "t-1")
	}
	if got.Level != knowledge.LevelMedium {
		t.Errorf("Level = %v, want medium", got.Level)
	}
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	s := New()
	_, ok, err := s.Get(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing ID")
	}
}

func TestStore_ListByPatient(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	for i := range 3 {
		id := fmt.Sprintf("t-%d", i)
		if err := s.Put(ctx, &triage.Result{ID: id, PatientID: "p-9", Status: triage.StatusComplete}); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}
	_ = s.Put(ctx, &triage.Result{ID: "other", PatientID: "p-x", Status: triage.StatusComplete})

	got, err := s.ListByPatient(ctx, "p-9", 0)
	if err != nil {
		t.Fatalf("ListByPatient: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("results = %d, want 3", len(got))
	}
	// Newest first.
	if got[0].ID != "t-2" || got[2].ID != "t-0" {
		t.Errorf("order = [%s %s %s], want [t-2 t-1 t-0]", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestStore_ListByPatientLimit(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	for i := range 5 {
		_ = s.Put(ctx, &triage.Result{ID: fmt.Sprintf("t-%d", i), PatientID: "p-9"})
	}

	got, err := s.ListByPatient(ctx, "p-9", 2)
	if err != nil {
		t.Fatalf("ListByPatient: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	if got[0].ID != "t-4" {
		t.Errorf("first = %q, want t-4", got[0].ID)
	}
}

func TestStore_ListByPatientMissing(t *testing.T) {
	t.Parallel()

	s := New()
	got, err := s.ListByPatient(context.Background(), "nobody", 10)
	if err != nil {
		t.Fatalf("ListByPatient: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("results = %d, want 0", len(got))
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	_ = s.Put(ctx, &triage.Result{ID: "t-3", PatientID: "p-3", Status: triage.StatusFailed, Level: knowledge.LevelHigh})
	_ = s.Put(ctx, &triage.Result{ID: "t-3", PatientID: "p-3", Status: triage.StatusComplete, Level: knowledge.LevelLow})

	got, ok, err := s.Get(ctx, "t-3")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected result to be found")
	}
	if got.Status != triage.StatusComplete {
		t.Errorf("Status = %q, want %q", got.Status, triage.StatusComplete)
	}

	// Overwrite must not duplicate the patient index entry.
	list, _ := s.ListByPatient(ctx, "p-3", 0)
	if len(list) != 1 {
		t.Errorf("indexed results = %d, want 1", len(list))
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	_ = s.Put(ctx, &triage.Result{ID: "t-c", PatientID: "p-c", Level: knowledge.LevelLow})

	got, _, _ := s.Get(ctx, "t-c")
	got.Level = knowledge.LevelCritical

	again, _, _ := s.Get(ctx, "t-c")
	if again.Level != knowledge.LevelLow {
		t.Errorf("stored level mutated to %v", again.Level)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n * 2)

	for i := range n {
		id := fmt.Sprintf("id-%d", i)
		pid := fmt.Sprintf("p-%d", i%10)

		go func() {
			defer wg.Done()
			_ = s.Put(ctx, &triage.Result{ID: id, PatientID: pid, Status: triage.StatusComplete})
		}()

		go func() {
			defer wg.Done()
			_, _, _ = s.Get(ctx, id)
			_, _ = s.ListByPatient(ctx, pid, 5)
		}()
	}

	wg.Wait()
}
