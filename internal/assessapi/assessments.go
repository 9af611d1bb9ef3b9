package assessapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/linnemanlabs/sahayak/internal/compliance"
	"github.com/linnemanlabs/sahayak/internal/patient"
)

const submitOperation = "triage_assessment"

func (a *API) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req patient.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" && req.Vitals.Empty() && req.VitalSigns.Empty() {
		writeError(w, http.StatusBadRequest, "symptoms or vitals required")
		return
	}

	// The gate runs before any patient data reaches the engine. Assessment
	// payloads are always graded PHI.
	decision := a.gate.Evaluate(submitOperation, compliance.PHI, req.Consent)
	if !decision.Authorized {
		a.logger.Info(r.Context(), "assessment not authorized",
			"operation", decision.Operation,
			"checks", decision.Checks,
		)
		writeError(w, http.StatusForbidden, "not authorized")
		return
	}

	assessment := req.Normalize()

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.String("sahayak.patient.id", assessment.PatientID),
		attribute.Int("sahayak.patient.age", assessment.Age),
	)

	result, err := a.svc.Submit(r.Context(), assessment)
	if err != nil {
		a.logger.Error(r.Context(), err, "assessment failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	span.SetAttributes(
		attribute.String("sahayak.assessment.id", result.ID),
		attribute.String("sahayak.assessment.level", result.Level.String()),
	)

	writeJSON(w, http.StatusOK, result)
}
