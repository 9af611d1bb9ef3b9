package triage

import (
	"context"
	"reflect"
	"testing"

	"github.com/linnemanlabs/go-core/log"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
	"github.com/linnemanlabs/sahayak/internal/patient"
	"github.com/linnemanlabs/sahayak/internal/symptoms"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func newTestEngine() *Engine {
	return NewEngine(symptoms.New(), log.Nop(), EngineHooks{})
}

func TestAssess_FeverAndHeadache(t *testing.T) {
	t.Parallel()

	a := &patient.Assessment{
		Symptoms:     "मुझे बुखार है और सरदर्द है",
		Age:          35,
		Vitals:       &patient.Vitals{Temperature: floatPtr(102.5), BloodPressure: "120/80"},
		DurationDays: 0,
	}

	ev := newTestEngine().Assess(context.Background(), a)

	if ev.Level != knowledge.LevelMedium {
		t.Errorf("level = %v, want medium", ev.Level)
	}
	if len(ev.Trail.Symptoms) != 2 {
		t.Fatalf("symptoms = %d, want 2", len(ev.Trail.Symptoms))
	}
	for _, m := range ev.Trail.Symptoms {
		if m.Severity != knowledge.LevelMedium {
			t.Errorf("symptom %s severity = %v, want medium", m.Condition, m.Severity)
		}
	}
	if ev.Trail.EmergencyLevel != knowledge.LevelLow {
		t.Errorf("emergency level = %v, want low", ev.Trail.EmergencyLevel)
	}
	if ev.Trail.VitalsLevel != knowledge.LevelMedium {
		t.Errorf("vitals level = %v, want medium (temp above 101)", ev.Trail.VitalsLevel)
	}
	if ev.Trail.Language != "hindi" {
		t.Errorf("language = %q, want hindi", ev.Trail.Language)
	}
	if ev.Trail.DecidingRule != RuleSymptomSeverity {
		t.Errorf("deciding rule = %q, want %q", ev.Trail.DecidingRule, RuleSymptomSeverity)
	}
}

// A high-tier emergency keyword decides the level before per-symptom
// severity analysis runs.
func TestAssess_EmergencyKeywordShortCircuit(t *testing.T) {
	t.Parallel()

	a := &patient.Assessment{
		Symptoms: "severe chest pain and difficulty breathing",
		Age:      45,
	}

	ev := newTestEngine().Assess(context.Background(), a)

	if ev.Level != knowledge.LevelHigh {
		t.Errorf("level = %v, want high", ev.Level)
	}
	if ev.Trail.DecidingRule != RuleEmergencyHigh {
		t.Errorf("deciding rule = %q, want %q", ev.Trail.DecidingRule, RuleEmergencyHigh)
	}
	if ev.Trail.EmergencyKeyword != "severe chest pain" {
		t.Errorf("emergency keyword = %q, want %q", ev.Trail.EmergencyKeyword, "severe chest pain")
	}
}

func TestAssess_EmptyInput(t *testing.T) {
	t.Parallel()

	a := &patient.Assessment{Symptoms: "", Age: 30, DurationDays: 0}

	ev := newTestEngine().Assess(context.Background(), a)

	if ev.Level != knowledge.LevelLow {
		t.Errorf("level = %v, want low", ev.Level)
	}
	if len(ev.Trail.Symptoms) != 0 {
		t.Errorf("symptoms = %v, want none", ev.Trail.Symptoms)
	}
	if ev.Trail.EmergencyLevel != knowledge.LevelLow {
		t.Errorf("emergency level = %v, want low", ev.Trail.EmergencyLevel)
	}
	if ev.Trail.VitalsLevel != knowledge.LevelLow {
		t.Errorf("vitals level = %v, want low", ev.Trail.VitalsLevel)
	}
}

// Any critical-tier emergency keyword forces critical no matter what the
// rest of the input says.
func TestAssess_CriticalKeywordAlwaysCritical(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"patient is unconscious",
		"मरीज को बेहोशी हो रही है",
		"i think it is a heart attack, but vitals look okay",
	} {
		a := &patient.Assessment{
			Symptoms: text,
			Age:      30,
			Vitals:   &patient.Vitals{Temperature: floatPtr(98.6), BloodPressure: "120/80", HeartRate: intPtr(70)},
		}
		ev := newTestEngine().Assess(context.Background(), a)
		if ev.Level != knowledge.LevelCritical {
			t.Errorf("Assess(%q) level = %v, want critical", text, ev.Level)
		}
		if ev.Trail.DecidingRule != RuleEmergencyCritical {
			t.Errorf("Assess(%q) rule = %q, want %q", text, ev.Trail.DecidingRule, RuleEmergencyCritical)
		}
	}
}

func TestAssess_VitalsOnlyEscalation(t *testing.T) {
	t.Parallel()

	a := &patient.Assessment{
		Symptoms: "feeling okay otherwise",
		Age:      30,
		Vitals:   &patient.Vitals{Temperature: floatPtr(104)},
	}

	ev := newTestEngine().Assess(context.Background(), a)

	if ev.Level != knowledge.LevelHigh {
		t.Errorf("level = %v, want high from vitals", ev.Level)
	}
	if ev.Trail.DecidingRule != RuleVitals {
		t.Errorf("deciding rule = %q, want %q", ev.Trail.DecidingRule, RuleVitals)
	}
}

// A single critical-severity symptom short-circuits the determination even
// though no emergency keyword matched.
func TestAssess_CriticalSymptomSeverity(t *testing.T) {
	t.Parallel()

	a := &patient.Assessment{Symptoms: "अत्यधिक खांसी", Age: 30}

	ev := newTestEngine().Assess(context.Background(), a)

	if ev.Trail.EmergencyLevel != knowledge.LevelLow {
		t.Fatalf("emergency level = %v, want low (keyword path must not fire)", ev.Trail.EmergencyLevel)
	}
	if ev.Level != knowledge.LevelCritical {
		t.Errorf("level = %v, want critical", ev.Level)
	}
	if ev.Trail.DecidingRule != RuleSymptomCritical {
		t.Errorf("deciding rule = %q, want %q", ev.Trail.DecidingRule, RuleSymptomCritical)
	}
}

func TestDecide_AgeModifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		age      int
		text     string
		want     knowledge.Level
		wantRule Rule
	}{
		{"elderly with medium symptoms", 70, "मुझे बुखार है", knowledge.LevelMedium, RuleAgeModifier},
		{"very young with medium symptoms", 3, "मुझे बुखार है", knowledge.LevelMedium, RuleAgeModifier},
		{"elderly with high symptoms", 70, "लगातार खांसी", knowledge.LevelHigh, RuleAgeModifier},
		{"adult unaffected", 35, "मुझे बुखार है", knowledge.LevelMedium, RuleSymptomSeverity},
	}

	ex := symptoms.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := &patient.Assessment{Age: tt.age}
			level, rule := decide(ex.Extract(tt.text), a, knowledge.LevelLow)
			if level != tt.want || rule != tt.wantRule {
				t.Errorf("decide = (%v, %q), want (%v, %q)", level, rule, tt.want, tt.wantRule)
			}
		})
	}
}

func TestDecide_DurationModifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		duration int
		want     knowledge.Level
		wantRule Rule
	}{
		{"long duration high severity", "लगातार खांसी", 10, knowledge.LevelHigh, RuleDurationModifier},
		{"medium duration medium severity", "mild fever", 5, knowledge.LevelMedium, RuleDurationModifier},
		{"short duration unaffected", "mild fever", 2, knowledge.LevelMedium, RuleSymptomSeverity},
		{"boundary three days unaffected", "mild fever", 3, knowledge.LevelMedium, RuleSymptomSeverity},
	}

	ex := symptoms.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := &patient.Assessment{Age: 30, DurationDays: tt.duration}
			level, rule := decide(ex.Extract(tt.text), a, knowledge.LevelLow)
			if level != tt.want || rule != tt.wantRule {
				t.Errorf("decide = (%v, %q), want (%v, %q)", level, rule, tt.want, tt.wantRule)
			}
		})
	}
}

// The final level is never below the maximum symptom severity, whatever the
// vitals, age, and duration contribute.
func TestDecide_Monotonicity(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"मुझे बुखार है",
		"mild fever",
		"लगातार खांसी",
		"severe chest pain and difficulty breathing",
		"patient is unconscious",
	}
	ages := []int{3, 30, 70}
	durations := []int{0, 5, 10}
	vitalLevels := []knowledge.Level{knowledge.LevelLow, knowledge.LevelMedium, knowledge.LevelHigh}

	ex := symptoms.New()
	for _, text := range texts {
		an := ex.Extract(text)
		// Baseline: symptom analysis with neutral age, duration, and vitals.
		baseline, _ := decide(an, &patient.Assessment{Age: 30}, knowledge.LevelLow)
		for _, age := range ages {
			for _, dur := range durations {
				for _, vl := range vitalLevels {
					a := &patient.Assessment{Age: age, DurationDays: dur}
					level, _ := decide(an, a, vl)
					if level < baseline {
						t.Errorf("decide(%q, age=%d, dur=%d, vitals=%v) = %v, below symptom baseline %v",
							text, age, dur, vl, level, baseline)
					}
				}
			}
		}
	}
}

func TestAssess_Idempotent(t *testing.T) {
	t.Parallel()

	a := &patient.Assessment{
		Symptoms:     "मुझे बुखार है और सरदर्द है",
		Age:          72,
		Gender:       "female",
		Vitals:       &patient.Vitals{Temperature: floatPtr(102.5)},
		DurationDays: 4,
	}

	e := newTestEngine()
	first := e.Assess(context.Background(), a)
	second := e.Assess(context.Background(), a)

	if first.Level != second.Level {
		t.Errorf("levels differ: %v vs %v", first.Level, second.Level)
	}
	if !reflect.DeepEqual(first.Trail, second.Trail) {
		t.Errorf("trails differ:\n%+v\n%+v", first.Trail, second.Trail)
	}
	if first.Report != second.Report {
		t.Error("reports differ between identical inputs")
	}
	if first.RiskScore != second.RiskScore {
		t.Errorf("risk scores differ: %v vs %v", first.RiskScore, second.RiskScore)
	}
}

func TestRiskScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level knowledge.Level
		want  float64
	}{
		{knowledge.LevelCritical, 0.8},
		{knowledge.LevelHigh, 0.6},
		{knowledge.LevelMedium, 0.4},
		{knowledge.LevelLow, 0.2},
	}
	for _, tt := range tests {
		if got := riskScore(tt.level); got != tt.want {
			t.Errorf("riskScore(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestAssess_HooksFire(t *testing.T) {
	t.Parallel()

	var event *AssessEvent
	e := NewEngine(symptoms.New(), log.Nop(), EngineHooks{
		OnAssess: func(ev *AssessEvent) { event = ev },
	})

	e.Assess(context.Background(), &patient.Assessment{Symptoms: "मुझे बुखार है", Age: 30})

	if event == nil {
		t.Fatal("OnAssess hook did not fire")
	}
	if event.Level != knowledge.LevelMedium {
		t.Errorf("event level = %v, want medium", event.Level)
	}
	if event.SymptomCount != 1 {
		t.Errorf("event symptom count = %d, want 1", event.SymptomCount)
	}
}

func TestAssess_RiskFactorsInTrail(t *testing.T) {
	t.Parallel()

	a := &patient.Assessment{
		Symptoms:          "मुझे बुखार है",
		Age:               72,
		Gender:            "female",
		Pregnancy:         true,
		ChronicConditions: []string{"diabetes"},
		RecentSurgery:     true,
	}

	ev := newTestEngine().Assess(context.Background(), a)

	want := []string{"Advanced age (>65 years)", "Pregnancy", "diabetes", "Recent surgery"}
	if !reflect.DeepEqual(ev.Trail.RiskFactors, want) {
		t.Errorf("risk factors = %v, want %v", ev.Trail.RiskFactors, want)
	}
}
