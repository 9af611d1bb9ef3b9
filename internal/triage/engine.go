package triage

import (
	"context"
	"time"

	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/sahayak/internal/knowledge"
	"github.com/linnemanlabs/sahayak/internal/patient"
	"github.com/linnemanlabs/sahayak/internal/risk"
	"github.com/linnemanlabs/sahayak/internal/symptoms"
	"github.com/linnemanlabs/sahayak/internal/vitals"
)

// Age and duration modifier thresholds.
const (
	ageElderly       = 65
	ageVeryYoung     = 5
	durationLongDays = 7
	durationModDays  = 3
)

// Engine fuses symptom extraction, vital sign thresholds, and age/duration
// modifiers into one ordinal urgency level. It is a pure computation over
// immutable input and the read-only knowledge base, so a single Engine is
// safe for unrestricted concurrent use.
type Engine struct {
	extractor *symptoms.Extractor
	logger    log.Logger
	hooks     EngineHooks
}

// NewEngine creates a triage engine.
func NewEngine(extractor *symptoms.Extractor, logger log.Logger, hooks EngineHooks) *Engine {
	if logger == nil {
		logger = log.Nop()
	}
	return &Engine{
		extractor: extractor,
		logger:    logger,
		hooks:     hooks,
	}
}

// Assess runs the full fusion for one normalized assessment. It always
// terminates with a level: missing sub-fields were already defaulted at the
// boundary and never fail here.
func (e *Engine) Assess(ctx context.Context, a *patient.Assessment) *Evaluation {
	start := time.Now()

	analysis := e.extractor.Extract(a.Symptoms)
	vitalsLevel := vitals.Assess(a.Vitals)
	riskFactors := risk.Assess(a)

	level, rule := decide(analysis, a, vitalsLevel)

	trail := Trail{
		EmergencyLevel:   analysis.EmergencyLevel,
		EmergencyKeyword: analysis.EmergencyHit,
		Symptoms:         analysis.Symptoms,
		MaxSeverity:      maxSeverity(analysis.Symptoms),
		VitalsLevel:      vitalsLevel,
		RiskFactors:      riskFactors,
		DurationDays:     a.DurationDays,
		Language:         analysis.Language,
		DecidingRule:     rule,
	}

	bundle := Recommend(level)

	ev := &Evaluation{
		Level:           level,
		RiskScore:       riskScore(level),
		Trail:           trail,
		Recommendations: bundle,
		Report:          RenderReport(level, &trail, &bundle),
		Duration:        time.Since(start).Seconds(),
	}

	if e.hooks.OnAssess != nil {
		e.hooks.OnAssess(&AssessEvent{
			Level:          level,
			EmergencyLevel: analysis.EmergencyLevel,
			SymptomCount:   len(analysis.Symptoms),
			Duration:       ev.Duration,
		})
	}

	e.logger.Info(ctx, "assessment evaluated",
		"level", level.String(),
		"rule", string(rule),
		"symptoms", len(analysis.Symptoms),
		"emergency_level", analysis.EmergencyLevel.String(),
		"vitals_level", vitalsLevel.String(),
		"language", analysis.Language,
		"duration", ev.Duration,
	)

	return ev
}

// decide applies the fusion rules in their fixed order. Each rule can only
// escalate; the first terminal rule wins and the final answer is never below
// the maximum symptom severity.
//
// The age and duration modifiers only re-assert a severity already reached
// by the symptom scan; they never raise the level past it.
func decide(an *symptoms.Analysis, a *patient.Assessment, vitalsLevel knowledge.Level) (knowledge.Level, Rule) {
	// Global emergency keywords take highest priority.
	if an.EmergencyLevel == knowledge.LevelCritical {
		return knowledge.LevelCritical, RuleEmergencyCritical
	}
	if an.EmergencyLevel == knowledge.LevelHigh {
		return knowledge.LevelHigh, RuleEmergencyHigh
	}

	max := maxSeverity(an.Symptoms)

	// A single critical-severity symptom decides the whole assessment.
	if max == knowledge.LevelCritical {
		return knowledge.LevelCritical, RuleSymptomCritical
	}

	if a.Age > ageElderly || a.Age < ageVeryYoung {
		if max == knowledge.LevelHigh {
			return knowledge.LevelHigh, RuleAgeModifier
		}
		if max == knowledge.LevelMedium {
			return knowledge.LevelMedium, RuleAgeModifier
		}
	}

	if vitalsLevel == knowledge.LevelCritical {
		return knowledge.LevelCritical, RuleVitals
	}
	if vitalsLevel == knowledge.LevelHigh {
		return knowledge.LevelHigh, RuleVitals
	}

	if a.DurationDays > durationLongDays && max == knowledge.LevelHigh {
		return knowledge.LevelHigh, RuleDurationModifier
	}
	if a.DurationDays > durationModDays && max == knowledge.LevelMedium {
		return knowledge.LevelMedium, RuleDurationModifier
	}

	return max, RuleSymptomSeverity
}

// maxSeverity returns the highest severity among extracted symptoms, low
// when there are none.
func maxSeverity(matches []symptoms.Match) knowledge.Level {
	max := knowledge.LevelLow
	for _, m := range matches {
		max = max.Escalate(m.Severity)
	}
	return max
}

// riskScore maps the final level to the fixed confidence/risk score.
func riskScore(level knowledge.Level) float64 {
	switch level {
	case knowledge.LevelCritical:
		return 0.8
	case knowledge.LevelHigh:
		return 0.6
	case knowledge.LevelMedium:
		return 0.4
	default:
		return 0.2
	}
}

// AssessEvent summarizes one completed evaluation for metrics hooks.
type AssessEvent struct {
	Level          knowledge.Level
	EmergencyLevel knowledge.Level
	SymptomCount   int
	Duration       float64
}

// EngineHooks lets the caller observe engine activity without coupling the
// engine to a metrics backend.
type EngineHooks struct {
	OnAssess func(e *AssessEvent)
}
