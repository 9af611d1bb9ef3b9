// Package audit defines the audit logging collaborator: one immutable entry
// per patient interaction, recorded after the engine returns. Recording is
// best-effort by contract — a failed write never alters an already-computed
// triage result.
package audit

import (
	"context"
	"time"

	"github.com/linnemanlabs/sahayak/internal/compliance"
)

// Entry is one immutable audit record.
type Entry struct {
	ID                  string                    `json:"id"`
	PatientID           string                    `json:"patient_id"`
	Action              string                    `json:"action"`
	Classification      compliance.Classification `json:"data_classification"`
	RiskScore           float64                   `json:"risk_score"`
	EscalationTriggered bool                      `json:"escalation_triggered"`
	Outcome             string                    `json:"outcome"`
	CreatedAt           time.Time                 `json:"created_at"`
}

// Recorder persists audit entries.
type Recorder interface {
	Record(ctx context.Context, e *Entry) error
}
