// Package triage is the business boundary of Sahayak's triage decision
// engine. It defines the Engine (multi-signal fusion of symptom extraction,
// vital sign thresholds, and age/duration modifiers into one ordinal urgency
// level), the Service (lifecycle, persistence, fail-safe fallback, audit and
// escalation dispatch), the Store interface, and the domain models.
package triage
