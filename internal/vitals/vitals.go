// Package vitals classifies a vital sign bundle into an urgency level using
// fixed thresholds.
package vitals

import (
	"strconv"
	"strings"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
	"github.com/linnemanlabs/sahayak/internal/patient"
)

// Thresholds, °F / mmHg / bpm.
const (
	tempHigh   = 103.0
	tempMedium = 101.0

	systolicHigh      = 180
	systolicLow       = 90
	systolicMediumHi  = 160
	systolicMediumLow = 100

	hrHigh      = 120
	hrLow       = 50
	hrMediumHi  = 100
	hrMediumLow = 60
)

// Assess returns the urgency verdict for a vital sign bundle. Checks run in
// a fixed order (temperature, blood pressure, heart rate) and the first one
// that triggers decides the verdict; later readings are not consulted. That
// first-match-wins behavior is intentional and relied on by callers.
// Absent or empty vitals are low. A malformed blood pressure string is
// skipped rather than failing the assessment.
func Assess(v *patient.Vitals) knowledge.Level {
	if v.Empty() {
		return knowledge.LevelLow
	}

	if v.Temperature != nil {
		switch t := *v.Temperature; {
		case t > tempHigh:
			return knowledge.LevelHigh
		case t > tempMedium:
			return knowledge.LevelMedium
		}
	}

	if systolic, ok := parseSystolic(v.BloodPressure); ok {
		switch {
		case systolic > systolicHigh || systolic < systolicLow:
			return knowledge.LevelHigh
		case systolic > systolicMediumHi || systolic < systolicMediumLow:
			return knowledge.LevelMedium
		}
	}

	if v.HeartRate != nil {
		switch hr := *v.HeartRate; {
		case hr > hrHigh || hr < hrLow:
			return knowledge.LevelHigh
		case hr > hrMediumHi || hr < hrMediumLow:
			return knowledge.LevelMedium
		}
	}

	return knowledge.LevelLow
}

// parseSystolic extracts the systolic reading from a "systolic/diastolic"
// string. Anything malformed reports ok=false.
func parseSystolic(bp string) (int, bool) {
	systolicStr, _, found := strings.Cut(bp, "/")
	if !found {
		return 0, false
	}
	systolic, err := strconv.Atoi(strings.TrimSpace(systolicStr))
	if err != nil {
		return 0, false
	}
	return systolic, true
}
