// Package risk collects human-readable risk factor flags from patient
// demographics and history. Factors are purely additive context for the
// report and audit trail; they carry no numeric weighting.
package risk

import "github.com/linnemanlabs/sahayak/internal/patient"

const (
	elderlyAge   = 65
	veryYoungAge = 5
)

// Assess returns the risk factor flags for an assessment.
func Assess(a *patient.Assessment) []string {
	var factors []string

	if a.Age > elderlyAge {
		factors = append(factors, "Advanced age (>65 years)")
	} else if a.Age < veryYoungAge {
		factors = append(factors, "Very young age (<5 years)")
	}

	if a.Gender == "female" && a.Pregnancy {
		factors = append(factors, "Pregnancy")
	}

	factors = append(factors, a.ChronicConditions...)

	if a.RecentSurgery {
		factors = append(factors, "Recent surgery")
	}

	return factors
}
