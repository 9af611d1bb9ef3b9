// Package symptoms implements the bilingual keyword matcher that turns a
// free-text patient complaint into extracted symptoms, a global emergency
// level, and a detected language.
package symptoms

import (
	"strings"
	"unicode"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
)

// Match is one symptom extracted from the complaint text.
type Match struct {
	Condition string          `json:"condition"`
	HindiName string          `json:"hindi_name"`
	Keyword   string          `json:"keyword"`
	Severity  knowledge.Level `json:"severity"`
}

// Analysis is the outcome of scanning one complaint.
type Analysis struct {
	Symptoms       []Match         `json:"symptoms"`
	EmergencyLevel knowledge.Level `json:"emergency_level"`
	EmergencyHit   string          `json:"emergency_keyword,omitempty"`
	Language       string          `json:"language"`
}

// Extractor matches complaint text against the knowledge base. It holds no
// mutable state and is safe for concurrent use.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans the complaint for emergency keywords (tier order, highest
// first), then emits one Match per condition whose keywords occur in the
// text. Each match carries its own severity inferred from the severity
// lexicon. Blank input yields no symptoms and emergency level low.
func (e *Extractor) Extract(text string) *Analysis {
	a := &Analysis{
		EmergencyLevel: knowledge.LevelLow,
		Language:       DetectLanguage(text),
	}

	if strings.TrimSpace(text) == "" {
		return a
	}

	// Global emergency scan runs before per-symptom severity inference and
	// can override it downstream.
	a.EmergencyLevel, a.EmergencyHit = checkEmergency(text)

	severity := inferSeverity(text)
	for _, cond := range knowledge.Conditions() {
		if kw, ok := knowledge.ContainsKeyword(text, cond.Keywords); ok {
			a.Symptoms = append(a.Symptoms, Match{
				Condition: cond.ID,
				HindiName: cond.HindiName,
				Keyword:   kw,
				Severity:  severity,
			})
		}
	}

	return a
}

// checkEmergency scans tiers highest first; the first tier with a matching
// keyword wins. No match means low.
func checkEmergency(text string) (knowledge.Level, string) {
	for _, tier := range knowledge.EmergencyTiers() {
		if kw, ok := knowledge.ContainsKeyword(text, tier.Keywords); ok {
			return tier.Level, kw
		}
	}
	return knowledge.LevelLow, ""
}

// inferSeverity scans the severity lexicon highest tier first and returns
// the level of the first intensity word found, defaulting to medium.
func inferSeverity(text string) knowledge.Level {
	for _, tier := range knowledge.SeverityLexicon() {
		if _, ok := knowledge.ContainsKeyword(text, tier.Indicators); ok {
			return tier.Level
		}
	}
	return knowledge.LevelMedium
}

// DetectLanguage counts Devanagari runes against ASCII letters. Hindi wins
// ties as long as at least one Devanagari rune is present.
func DetectLanguage(text string) string {
	var hindi, english int
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Devanagari, r):
			hindi++
		case r < 128 && unicode.IsLetter(r):
			english++
		}
	}
	if hindi > 0 && hindi >= english {
		return "hindi"
	}
	return "english"
}
