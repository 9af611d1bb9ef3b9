// Package knowledge holds the static clinical reference tables: the condition
// database, the emergency keyword tiers, the severity lexicon, and the triage
// level descriptors. Everything here is built once at process start and is
// read-only afterwards, so it is safe to share across concurrent assessments.
package knowledge

import "strings"

// Condition is one entry in the condition database. Keywords are bilingual
// (Hindi and English) and matched as case-insensitive substrings.
type Condition struct {
	ID        string
	HindiName string
	Keywords  []string
	Symptoms  []string
}

// Descriptor describes one triage level: bilingual text, the recommended
// action, the target wait-time band, and a display color.
type Descriptor struct {
	Rank             int
	Description      string
	HindiDescription string
	Action           string
	HindiAction      string
	Color            string
	WaitTime         string
}

// conditions is the condition database, keyed lookups go through Conditions().
var conditions = []Condition{
	{
		ID:        "fever",
		HindiName: "बुखार",
		Keywords:  []string{"बुखार", "fever", "ताप", "ज्वर"},
		Symptoms:  []string{"high_temperature", "body_aches", "headache"},
	},
	{
		ID:        "cough",
		HindiName: "खांसी",
		Keywords:  []string{"खांसी", "cough", "कफ", "सूखी खांसी"},
		Symptoms:  []string{"dry_cough", "wet_cough", "chest_pain"},
	},
	{
		ID:        "chest_pain",
		HindiName: "छाती में दर्द",
		Keywords:  []string{"छाती दर्द", "chest pain", "दिल का दर्द", "हृदय दर्द"},
		Symptoms:  []string{"sharp_pain", "pressure", "shortness_of_breath"},
	},
	{
		ID:        "headache",
		HindiName: "सरदर्द",
		Keywords:  []string{"सरदर्द", "headache", "माइग्रेन", "दिमाग दर्द"},
		Symptoms:  []string{"throbbing", "pressure", "light_sensitivity"},
	},
	{
		ID:        "breathing_difficulty",
		HindiName: "सांस लेने में कठिनाई",
		Keywords:  []string{"सांस फूलना", "breathing difficulty", "shortness of breath", "दमा"},
		Symptoms:  []string{"shortness_of_breath", "wheezing", "chest_tightness"},
	},
}

// EmergencyTier is one priority tier of the emergency keyword list. Tiers are
// scanned highest first and the first match wins.
type EmergencyTier struct {
	Level    Level
	Keywords []string
}

// emergencyTiers is ordered critical > high > medium; scan order matters.
var emergencyTiers = []EmergencyTier{
	{
		Level: LevelCritical,
		Keywords: []string{
			"heart attack", "दिल का दौरा", "cardiac arrest", "सांस रुकना",
			"severe bleeding", "heavy bleeding", "अत्यधिक खून बहना",
			"unconscious", "बेहोशी", "coma", "कोमा",
			"stroke", "पक्षाघात", "paralysis", "लकवा",
		},
	},
	{
		Level: LevelHigh,
		Keywords: []string{
			"severe chest pain", "severe headache", "high fever", "high temperature",
			"difficulty breathing", "severe injury", "major accident", "poisoning",
		},
	},
	{
		Level: LevelMedium,
		Keywords: []string{
			"moderate fever", "persistent cough", "injury", "pain", "swelling",
			"infection", "allergy", "dizziness", "nausea",
		},
	},
}

// SeverityTier is one tier of the severity lexicon: intensity words that tag
// an individual extracted symptom.
type SeverityTier struct {
	Level      Level
	Indicators []string
}

// severityLexicon is scanned highest tier first; "mild" deliberately appears
// in both the medium and low tiers, the medium tier wins.
var severityLexicon = []SeverityTier{
	{LevelCritical, []string{"severe", "बहुत ज्यादा", "extreme", "अत्यधिक", "unbearable", "बर्दाश्त नहीं"}},
	{LevelHigh, []string{"high", "ज्यादा", "persistent", "लगातार", "constant", "स्थिर"}},
	{LevelMedium, []string{"moderate", "ठीक-ठाक", "mild", "हल्का", "some", "कुछ"}},
	{LevelLow, []string{"slight", "हल्का सा", "mild", "occasional", "कभी-कभी"}},
}

// descriptors maps each triage level to its bilingual descriptor.
var descriptors = map[Level]Descriptor{
	LevelCritical: {
		Rank:             1,
		Description:      "तत्काल चिकित्सा सहायता आवश्यक",
		HindiDescription: "आपातकालीन स्थिति - तुरंत अस्पताल जाएं",
		Action:           "Call emergency services immediately",
		HindiAction:      "108 पर कॉल करें या तुरंत अस्पताल जाएं",
		Color:            "red",
		WaitTime:         "0-5 minutes",
	},
	LevelHigh: {
		Rank:             2,
		Description:      "जल्द चिकित्सा सहायता आवश्यक",
		HindiDescription: "गंभीर स्थिति - जल्दी डॉक्टर से मिलें",
		Action:           "Visit emergency department within 1-2 hours",
		HindiAction:      "1-2 घंटे के भीतर अस्पताल जाएं",
		Color:            "orange",
		WaitTime:         "15-30 minutes",
	},
	LevelMedium: {
		Rank:             3,
		Description:      "चिकित्सा सलाह आवश्यक",
		HindiDescription: "सावधानी आवश्यक - डॉक्टर से सलाह लें",
		Action:           "Schedule doctor appointment within 24 hours",
		HindiAction:      "24 घंटे के भीतर डॉक्टर से मिलें",
		Color:            "yellow",
		WaitTime:         "1-2 hours",
	},
	LevelLow: {
		Rank:             4,
		Description:      "सामान्य चिकित्सा सलाह",
		HindiDescription: "सामान्य स्थिति - नियमित चेकअप कराएं",
		Action:           "Monitor symptoms and consult if worsening",
		HindiAction:      "लक्षणों पर नजर रखें और बिगड़ने पर डॉक्टर से मिलें",
		Color:            "green",
		WaitTime:         "2-4 hours",
	},
}

// Conditions returns the condition database.
func Conditions() []Condition {
	return conditions
}

// EmergencyTiers returns the emergency keyword tiers, highest first.
func EmergencyTiers() []EmergencyTier {
	return emergencyTiers
}

// SeverityLexicon returns the severity word tiers, highest first.
func SeverityLexicon() []SeverityTier {
	return severityLexicon
}

// DescriptorFor returns the descriptor for a triage level.
func DescriptorFor(l Level) Descriptor {
	return descriptors[l]
}

// ContainsKeyword reports whether any of the given bilingual keywords occurs
// as a case-insensitive substring of text.
func ContainsKeyword(text string, keywords []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}
