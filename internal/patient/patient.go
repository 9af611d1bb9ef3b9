// Package patient defines the canonical patient assessment input and the
// boundary adapter that normalizes incoming request payloads, including the
// legacy field names still sent by older clients, into that single shape.
package patient

import "strings"

// Vitals is the vital sign bundle. Pointer fields distinguish "absent" from
// zero: an absent reading is treated as normal, never as a zero measurement.
type Vitals struct {
	Temperature   *float64 `json:"temperature,omitempty"`
	BloodPressure string   `json:"blood_pressure,omitempty"`
	HeartRate     *int     `json:"heart_rate,omitempty"`
}

// Empty reports whether no vital sign was supplied at all.
func (v *Vitals) Empty() bool {
	return v == nil || (v.Temperature == nil && v.BloodPressure == "" && v.HeartRate == nil)
}

// Assessment is the canonical, immutable input to the triage engine.
// It is constructed once per request by Request.Normalize.
type Assessment struct {
	PatientID         string
	Symptoms          string
	Age               int
	Gender            string
	Pregnancy         bool
	ChronicConditions []string
	RecentSurgery     bool
	Vitals            *Vitals
	DurationDays      int
}

// Request is the wire shape accepted at the API boundary. It tolerates both
// current and legacy field names for the same concept (vitals/vital_signs,
// duration_days/duration_hours, chronic_conditions/medical_history); all
// branching on those alternatives happens here, not in the engine.
type Request struct {
	PatientID     string `json:"patient_id,omitempty"`
	Symptoms      string `json:"symptoms"`
	Age           *int   `json:"age,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Pregnancy     bool   `json:"pregnancy,omitempty"`
	RecentSurgery bool   `json:"recent_surgery,omitempty"`
	Consent       bool   `json:"consent,omitempty"`

	ChronicConditions []string `json:"chronic_conditions,omitempty"`
	MedicalHistory    []string `json:"medical_history,omitempty"` // legacy

	Vitals     *Vitals `json:"vitals,omitempty"`
	VitalSigns *Vitals `json:"vital_signs,omitempty"` // legacy

	DurationDays  *int `json:"duration_days,omitempty"`
	DurationHours *int `json:"duration_hours,omitempty"` // legacy
}

const defaultAge = 30

// Normalize resolves legacy aliases and fills defaults, producing the one
// canonical Assessment. Missing or malformed fields never fail: age defaults
// to 30, vitals to absent, duration to zero days.
func (r *Request) Normalize() *Assessment {
	a := &Assessment{
		PatientID: r.PatientID,
		Symptoms:  r.Symptoms,
		Age:       defaultAge,
		Gender:    strings.ToLower(strings.TrimSpace(r.Gender)),
		Pregnancy: r.Pregnancy,
	}

	if r.Age != nil {
		a.Age = *r.Age
	}

	a.ChronicConditions = r.ChronicConditions
	if len(a.ChronicConditions) == 0 {
		a.ChronicConditions = r.MedicalHistory
	}

	a.RecentSurgery = r.RecentSurgery

	a.Vitals = r.Vitals
	if a.Vitals == nil {
		a.Vitals = r.VitalSigns
	}

	switch {
	case r.DurationDays != nil:
		a.DurationDays = *r.DurationDays
	case r.DurationHours != nil:
		a.DurationDays = *r.DurationHours / 24
	}
	if a.DurationDays < 0 {
		a.DurationDays = 0
	}

	return a
}
