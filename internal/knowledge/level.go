package knowledge

import (
	"encoding/json"
	"fmt"
)

// Level is the ordinal urgency classification shared by symptom severity,
// emergency keyword tiers, vital sign verdicts, and the final triage level.
// Higher values are more urgent, so levels compare directly with < and >.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
	LevelCritical
)

var levelNames = map[Level]string{
	LevelLow:      "low",
	LevelMedium:   "medium",
	LevelHigh:     "high",
	LevelCritical: "critical",
}

// String returns the lowercase wire name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel converts a wire name to a Level.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if name == s {
			return l, nil
		}
	}
	return LevelLow, fmt.Errorf("unknown urgency level %q", s)
}

// Escalate returns the higher of l and other. Escalation is one-directional:
// the working level is only ever replaced by a higher one.
func (l Level) Escalate(other Level) Level {
	if other > l {
		return other
	}
	return l
}

// MarshalJSON serializes the level as its lowercase string name.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses the lowercase string name into a level.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
