// Package assessapi exposes the triage HTTP API: submitting assessments and
// reading back persisted results.
package assessapi

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/sahayak/internal/compliance"
	"github.com/linnemanlabs/sahayak/internal/patient"
	"github.com/linnemanlabs/sahayak/internal/triage"
)

// TriageService defines the business operations assessapi needs.
type TriageService interface {
	Submit(ctx context.Context, a *patient.Assessment) (*triage.Result, error)
	Get(ctx context.Context, id string) (*triage.Result, bool, error)
	History(ctx context.Context, patientID string, limit int) ([]*triage.Result, error)
}

const defaultHistoryLimit = 50

// API holds dependencies for HTTP handlers.
type API struct {
	logger       log.Logger
	svc          TriageService
	gate         *compliance.Gate
	historyLimit int
}

// New creates a new API handler.
func New(logger log.Logger, svc TriageService, gate *compliance.Gate) *API {
	if logger == nil {
		logger = log.Nop()
	}
	if svc == nil {
		panic(xerrors.New("triage service is required"))
	}
	if gate == nil {
		gate = compliance.NewGate()
	}
	return &API{
		logger:       logger,
		svc:          svc,
		gate:         gate,
		historyLimit: defaultHistoryLimit,
	}
}

// SetHistoryLimit overrides the per-patient history page size. Values <= 0
// are ignored.
func (a *API) SetHistoryLimit(n int) {
	if n > 0 {
		a.historyLimit = n
	}
}

// RegisterRoutes attaches API endpoints to the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assessments", a.handleSubmitAssessment)
		r.Get("/assessments/{id}", a.handleGetAssessment)
		r.Get("/patients/{patientID}/assessments", a.handlePatientHistory)
	})
}

func (a *API) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("sahayak.assessment.id", id))

	result, ok, err := a.svc.Get(r.Context(), id)
	if err != nil {
		a.logger.Error(r.Context(), err, "failed to get assessment", "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	span.SetAttributes(attribute.String("sahayak.assessment.status", string(result.Status)))

	writeJSON(w, http.StatusOK, result)
}

func (a *API) handlePatientHistory(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("sahayak.patient.id", patientID))

	results, err := a.svc.History(r.Context(), patientID, a.historyLimit)
	if err != nil {
		a.logger.Error(r.Context(), err, "failed to list assessments", "patient_id", patientID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if results == nil {
		results = []*triage.Result{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"patient_id":  patientID,
		"assessments": results,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
