package triage

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the triage subsystem.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec
	AssessmentDuration prometheus.Histogram
	EmergencyHits      *prometheus.CounterVec
	SymptomsExtracted  prometheus.Histogram
	SubmitsTotal       *prometheus.CounterVec
	EscalationsTotal   prometheus.Counter
	AuditFailures      prometheus.Counter
}

// NewMetrics registers and returns triage metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sahayak_assessments_total",
			Help: "Total assessments by final urgency level.",
		}, []string{"level"}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sahayak_assessment_duration_seconds",
			Help:    "Duration of engine evaluations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs .. ~1.6s
		}),
		EmergencyHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sahayak_emergency_keyword_hits_total",
			Help: "Emergency keyword matches by tier.",
		}, []string{"tier"}),
		SymptomsExtracted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sahayak_symptoms_extracted",
			Help:    "Symptoms extracted per assessment.",
			Buckets: prometheus.LinearBuckets(0, 1, 8), // 0 .. 7
		}),
		SubmitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sahayak_submits_total",
			Help: "Total assessment submissions by outcome.",
		}, []string{"outcome"}),
		EscalationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sahayak_escalations_total",
			Help: "Assessments that required escalation.",
		}),
		AuditFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sahayak_audit_failures_total",
			Help: "Audit record writes that failed.",
		}),
	}

	reg.MustRegister(
		m.AssessmentsTotal,
		m.AssessmentDuration,
		m.EmergencyHits,
		m.SymptomsExtracted,
		m.SubmitsTotal,
		m.EscalationsTotal,
		m.AuditFailures,
	)

	return m
}

// Hooks returns an EngineHooks that increments the corresponding metrics.
func (m *Metrics) Hooks() EngineHooks {
	return EngineHooks{
		OnAssess: func(e *AssessEvent) {
			m.AssessmentsTotal.WithLabelValues(e.Level.String()).Inc()
			m.AssessmentDuration.Observe(e.Duration)
			m.EmergencyHits.WithLabelValues(e.EmergencyLevel.String()).Inc()
			m.SymptomsExtracted.Observe(float64(e.SymptomCount))
		},
	}
}
