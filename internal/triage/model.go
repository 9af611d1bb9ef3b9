package triage

import (
	"time"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
	"github.com/linnemanlabs/sahayak/internal/symptoms"
)

// Status tracks where an assessment is in its lifecycle.
type Status string

const (
	// StatusComplete means the engine produced a full result.
	StatusComplete Status = "complete"

	// StatusFailed means the engine failed mid-evaluation and the result is
	// the conservative fallback, never a silent low.
	StatusFailed Status = "failed"
)

// Rule identifies which fusion rule decided the final level.
type Rule string

const (
	RuleEmergencyCritical Rule = "emergency_critical"
	RuleEmergencyHigh     Rule = "emergency_high"
	RuleSymptomCritical   Rule = "symptom_critical"
	RuleAgeModifier       Rule = "age_modifier"
	RuleVitals            Rule = "vitals"
	RuleDurationModifier  Rule = "duration_modifier"
	RuleSymptomSeverity   Rule = "symptom_severity"
	RuleFallback          Rule = "fallback"
)

// Trail is the contributing-factor record behind one triage decision. It is
// retained in full so the report and audit log can reconstruct why the level
// was reached, not just what it is.
type Trail struct {
	EmergencyLevel   knowledge.Level  `json:"emergency_level"`
	EmergencyKeyword string           `json:"emergency_keyword,omitempty"`
	Symptoms         []symptoms.Match `json:"symptoms,omitempty"`
	MaxSeverity      knowledge.Level  `json:"max_severity"`
	VitalsLevel      knowledge.Level  `json:"vitals_level"`
	RiskFactors      []string         `json:"risk_factors,omitempty"`
	DurationDays     int              `json:"duration_days"`
	Language         string           `json:"language"`
	DecidingRule     Rule             `json:"deciding_rule"`
}

// Bundle is the fixed recommendation package attached to a triage level.
type Bundle struct {
	ImmediateActions     []string `json:"immediate_actions"`
	FollowUp             []string `json:"follow_up"`
	Monitoring           []string `json:"monitoring"`
	HindiRecommendations []string `json:"hindi_recommendations"`
	Action               string   `json:"action"`
	HindiAction          string   `json:"hindi_action"`
	WaitTime             string   `json:"wait_time"`
	Color                string   `json:"color"`
	FollowUpHours        int      `json:"follow_up_hours"`
	SpecialistNeeded     bool     `json:"specialist_needed"`
	EscalationRequired   bool     `json:"escalation_required"`
}

// Evaluation is the engine's output for one assessment: the fused level plus
// everything needed for the report and the audit trail. The service wraps it
// into a stored Result.
type Evaluation struct {
	Level           knowledge.Level
	RiskScore       float64
	Trail           Trail
	Recommendations Bundle
	Report          string
	Duration        float64 // seconds
}

// Result is the persisted outcome of one triage assessment. Produced once,
// never mutated afterwards.
type Result struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id,omitempty"`
	Status    Status `json:"status"`

	Level           knowledge.Level `json:"urgency_level"`
	RiskScore       float64         `json:"risk_score"`
	Trail           Trail           `json:"contributing_factors"`
	Recommendations Bundle          `json:"recommendations"`
	Report          string          `json:"report"`
	Complete        bool            `json:"triage_complete"`

	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
	Duration    float64   `json:"duration_seconds,omitempty"`
}
