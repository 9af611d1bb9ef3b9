// Package pgstore provides a PostgreSQL implementation of triage.Store.
package pgstore

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
	"github.com/linnemanlabs/sahayak/internal/triage"
)

var tracer = otel.Tracer("github.com/linnemanlabs/sahayak/internal/triage/pgstore")

//go:embed schema.sql
var schema string

// Store persists triage results in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// New applies the schema on the given pool and returns a ready Store. The
// pool is owned by the caller.
func New(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

const resultColumns = `id, patient_id, status, urgency_level, risk_score, trail,
	recommendations, report, complete, created_at, completed_at, duration_s`

// Get retrieves a triage result by ID.
func (s *Store) Get(ctx context.Context, id string) (*triage.Result, bool, error) {
	ctx, span := tracer.Start(ctx, "pgstore.Get", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
	))
	defer span.End()

	query := `SELECT ` + resultColumns + ` FROM triage_results WHERE id = $1`
	r, err := scanResultRow(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}
	if r == nil {
		return nil, false, nil
	}
	return r, true, nil
}

// ListByPatient retrieves up to limit results for a patient, newest first.
// A limit <= 0 applies a server-side default of 50.
func (s *Store) ListByPatient(ctx context.Context, patientID string, limit int) ([]*triage.Result, error) {
	ctx, span := tracer.Start(ctx, "pgstore.ListByPatient", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
	))
	defer span.End()

	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + resultColumns + ` FROM triage_results
		WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := s.pool.Query(ctx, query, patientID, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []*triage.Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

// Put inserts or updates a triage result (upsert on id).
func (s *Store) Put(ctx context.Context, r *triage.Result) error {
	ctx, span := tracer.Start(ctx, "pgstore.Put", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "UPSERT"),
	))
	defer span.End()

	trailJSON, err := json.Marshal(r.Trail)
	if err != nil {
		return fmt.Errorf("marshal trail: %w", err)
	}
	recJSON, err := json.Marshal(r.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	var completedAt *time.Time
	if !r.CompletedAt.IsZero() {
		completedAt = &r.CompletedAt
	}

	query := `INSERT INTO triage_results (
		id, patient_id, status, urgency_level, risk_score, trail,
		recommendations, report, complete, created_at, completed_at, duration_s
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	ON CONFLICT (id) DO UPDATE SET
		patient_id      = EXCLUDED.patient_id,
		status          = EXCLUDED.status,
		urgency_level   = EXCLUDED.urgency_level,
		risk_score      = EXCLUDED.risk_score,
		trail           = EXCLUDED.trail,
		recommendations = EXCLUDED.recommendations,
		report          = EXCLUDED.report,
		complete        = EXCLUDED.complete,
		completed_at    = EXCLUDED.completed_at,
		duration_s      = EXCLUDED.duration_s`

	_, err = s.pool.Exec(ctx, query,
		r.ID, r.PatientID, string(r.Status), r.Level.String(), r.RiskScore, trailJSON,
		recJSON, r.Report, r.Complete, r.CreatedAt, completedAt, r.Duration,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("upsert result: %w", err)
	}
	return nil
}

// scanResultRow scans a single row, returning (nil, nil) when no row is found.
func scanResultRow(row pgx.Row) (*triage.Result, error) {
	r, err := scanResult(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

func scanResult(row pgx.Row) (*triage.Result, error) {
	var (
		r           triage.Result
		status      string
		level       string
		trailJSON   []byte
		recJSON     []byte
		completedAt *time.Time
	)

	err := row.Scan(
		&r.ID, &r.PatientID, &status, &level, &r.RiskScore, &trailJSON,
		&recJSON, &r.Report, &r.Complete, &r.CreatedAt, &completedAt, &r.Duration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	r.Status = triage.Status(status)

	lv, err := knowledge.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse urgency level: %w", err)
	}
	r.Level = lv

	if completedAt != nil {
		r.CompletedAt = *completedAt
	}

	if err := json.Unmarshal(trailJSON, &r.Trail); err != nil {
		return nil, fmt.Errorf("unmarshal trail: %w", err)
	}
	if err := json.Unmarshal(recJSON, &r.Recommendations); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}

	return &r, nil
}
