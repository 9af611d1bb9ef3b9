// Package pgaudit provides a PostgreSQL implementation of audit.Recorder.
package pgaudit

import (
	"context"
	_ "embed"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linnemanlabs/sahayak/internal/audit"
)

var tracer = otel.Tracer("github.com/linnemanlabs/sahayak/internal/audit/pgaudit")

//go:embed schema.sql
var schema string

// Recorder writes audit entries to PostgreSQL. Entries are append-only.
type Recorder struct {
	pool *pgxpool.Pool
}

// New applies the schema on the given pool and returns a ready Recorder. The
// pool is owned by the caller.
func New(ctx context.Context, pool *pgxpool.Pool) (*Recorder, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Recorder{pool: pool}, nil
}

// Record inserts one audit entry.
func (r *Recorder) Record(ctx context.Context, e *audit.Entry) error {
	ctx, span := tracer.Start(ctx, "pgaudit.Record", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "INSERT"),
	))
	defer span.End()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_log (id, patient_id, action, classification, risk_score, escalation_triggered, outcome, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.PatientID, e.Action, string(e.Classification), e.RiskScore,
		e.EscalationTriggered, e.Outcome, e.CreatedAt,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
