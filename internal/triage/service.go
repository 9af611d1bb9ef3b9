package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/linnemanlabs/go-core/log"
	"github.com/oklog/ulid/v2"

	"github.com/linnemanlabs/sahayak/internal/audit"
	"github.com/linnemanlabs/sahayak/internal/compliance"
	"github.com/linnemanlabs/sahayak/internal/knowledge"
	"github.com/linnemanlabs/sahayak/internal/patient"
)

// auditAction is the action name recorded for every assessment.
const auditAction = "triage_assessment"

// Assessor is the engine boundary the service drives.
type Assessor interface {
	Assess(ctx context.Context, a *patient.Assessment) *Evaluation
}

// Notifier delivers escalation notifications for completed results.
type Notifier interface {
	Send(ctx context.Context, result *Result) error
}

// Service is the business boundary for triage operations: it normalizes
// nothing (that happened at the API edge), mints IDs, drives the engine,
// persists results, and dispatches the best-effort collaborators. A failure
// in any collaborator never alters the computed result.
type Service struct {
	store    Store
	engine   Assessor
	auditor  audit.Recorder
	notifier Notifier
	logger   log.Logger
	metrics  *Metrics
}

// NewService creates a triage service. auditor, notifier, and metrics may be
// nil.
func NewService(store Store, engine Assessor, auditor audit.Recorder, logger log.Logger, metrics *Metrics, notifier Notifier) *Service {
	if logger == nil {
		logger = log.Nop()
	}
	return &Service{
		store:    store,
		engine:   engine,
		auditor:  auditor,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// Submit runs one assessment synchronously and returns the full result.
// Any panic out of the engine is replaced with the conservative fallback
// result — under-triage is the unsafe failure direction, so the fallback
// escalates rather than defaulting low.
func (s *Service) Submit(ctx context.Context, a *patient.Assessment) (result *Result, err error) {
	id := ulid.Make().String()
	created := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, fmt.Errorf("assessment panic: %v", r), "engine failed, returning fallback", "id", id)
			result = s.fallback(ctx, id, a.PatientID, created)
			err = nil
		}
	}()

	ev := s.engine.Assess(ctx, a)

	result = &Result{
		ID:              id,
		PatientID:       a.PatientID,
		Status:          StatusComplete,
		Level:           ev.Level,
		RiskScore:       ev.RiskScore,
		Trail:           ev.Trail,
		Recommendations: ev.Recommendations,
		Report:          ev.Report,
		Complete:        true,
		CreatedAt:       created,
		CompletedAt:     time.Now(),
		Duration:        ev.Duration,
	}

	s.persist(ctx, result)
	s.dispatch(ctx, result)
	s.countSubmit("ok")

	return result, nil
}

// Get retrieves a persisted result by ID.
func (s *Service) Get(ctx context.Context, id string) (*Result, bool, error) {
	return s.store.Get(ctx, id)
}

// History lists persisted results for a patient, newest first.
func (s *Service) History(ctx context.Context, patientID string, limit int) ([]*Result, error) {
	return s.store.ListByPatient(ctx, patientID, limit)
}

// fallback builds the fail-safe-high result used when the engine fails.
func (s *Service) fallback(ctx context.Context, id, patientID string, created time.Time) *Result {
	level := knowledge.LevelHigh
	result := &Result{
		ID:              id,
		PatientID:       patientID,
		Status:          StatusFailed,
		Level:           level,
		RiskScore:       riskScore(level),
		Trail:           Trail{DecidingRule: RuleFallback, EmergencyLevel: knowledge.LevelLow, MaxSeverity: knowledge.LevelLow, VitalsLevel: knowledge.LevelLow},
		Recommendations: Recommend(level),
		Report:          "Please consult a healthcare provider immediately",
		Complete:        false,
		CreatedAt:       created,
		CompletedAt:     time.Now(),
	}

	s.persist(ctx, result)
	s.dispatch(ctx, result)
	s.countSubmit("fallback")

	return result
}

// persist stores the result best-effort. A store failure is logged but the
// computed result is still returned to the caller unchanged.
func (s *Service) persist(ctx context.Context, result *Result) {
	if err := s.store.Put(ctx, result); err != nil {
		s.logger.Error(ctx, err, "failed to persist triage result", "id", result.ID)
	}
}

// dispatch fans out to the audit recorder and escalation notifier,
// asynchronous and fire-and-forget. The result is fully built before this
// runs and is never touched again.
func (s *Service) dispatch(ctx context.Context, result *Result) {
	ctx = context.WithoutCancel(ctx)

	if s.auditor != nil {
		entry := &audit.Entry{
			ID:                  ulid.Make().String(),
			PatientID:           result.PatientID,
			Action:              auditAction,
			Classification:      compliance.PHI,
			RiskScore:           result.RiskScore,
			EscalationTriggered: result.Recommendations.EscalationRequired,
			Outcome:             string(result.Status),
			CreatedAt:           time.Now(),
		}
		go func() {
			if err := s.auditor.Record(ctx, entry); err != nil {
				s.logger.Error(ctx, err, "audit record failed", "id", result.ID)
				if s.metrics != nil {
					s.metrics.AuditFailures.Inc()
				}
			}
		}()
	}

	if result.Recommendations.EscalationRequired {
		if s.metrics != nil {
			s.metrics.EscalationsTotal.Inc()
		}
		if s.notifier != nil {
			go func() {
				if err := s.notifier.Send(ctx, result); err != nil {
					s.logger.Error(ctx, err, "escalation notify failed", "id", result.ID, "level", result.Level.String())
				}
			}()
		}
	}
}

func (s *Service) countSubmit(outcome string) {
	if s.metrics != nil {
		s.metrics.SubmitsTotal.WithLabelValues(outcome).Inc()
	}
}
