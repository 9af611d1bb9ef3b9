package triage

import "github.com/linnemanlabs/sahayak/internal/knowledge"

// Per-level immediate action and Hindi recommendation texts. The follow-up
// and monitoring lists are the same for every level.
var (
	immediateActions = map[knowledge.Level][]string{
		knowledge.LevelCritical: {
			"Call emergency services (108)",
			"Do not delay seeking care",
			"Have someone stay with patient",
		},
		knowledge.LevelHigh: {
			"Visit emergency department within 1-2 hours",
			"Bring medical records",
			"Have someone accompany",
		},
		knowledge.LevelMedium: {
			"Schedule doctor appointment within 24 hours",
			"Monitor symptoms closely",
			"Rest and stay hydrated",
		},
		knowledge.LevelLow: {
			"Monitor symptoms",
			"Rest and home care",
			"Consult doctor if symptoms worsen",
		},
	}

	hindiRecommendations = map[knowledge.Level][]string{
		knowledge.LevelCritical: {
			"108 पर तुरंत कॉल करें",
			"देरी न करें",
			"किसी को साथ रखें",
		},
		knowledge.LevelHigh: {
			"1-2 घंटे में अस्पताल जाएं",
			"मेडिकल रिकॉर्ड्स लाएं",
			"किसी को साथ लाएं",
		},
		knowledge.LevelMedium: {
			"24 घंटे में डॉक्टर से मिलें",
			"लक्षणों पर नजर रखें",
			"आराम करें और पानी पिएं",
		},
		knowledge.LevelLow: {
			"लक्षणों पर नजर रखें",
			"घर पर आराम करें",
			"लक्षण बिगड़ने पर डॉक्टर से मिलें",
		},
	}

	followUp = []string{
		"Keep symptom diary",
		"Note any changes in condition",
		"Follow medication instructions",
	}

	monitoring = []string{
		"Check temperature twice daily",
		"Monitor pain levels",
		"Watch for new symptoms",
	}

	followUpHours = map[knowledge.Level]int{
		knowledge.LevelCritical: 0,
		knowledge.LevelHigh:     2,
		knowledge.LevelMedium:   24,
		knowledge.LevelLow:      48,
	}
)

// Recommend maps a final triage level to its fixed bilingual action bundle.
// Pure lookup, no conditional logic beyond the level key.
func Recommend(level knowledge.Level) Bundle {
	d := knowledge.DescriptorFor(level)
	return Bundle{
		ImmediateActions:     immediateActions[level],
		FollowUp:             followUp,
		Monitoring:           monitoring,
		HindiRecommendations: hindiRecommendations[level],
		Action:               d.Action,
		HindiAction:          d.HindiAction,
		WaitTime:             d.WaitTime,
		Color:                d.Color,
		FollowUpHours:        followUpHours[level],
		SpecialistNeeded:     level >= knowledge.LevelHigh,
		EscalationRequired:   level >= knowledge.LevelHigh,
	}
}
