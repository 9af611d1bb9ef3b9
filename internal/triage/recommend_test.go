package triage

import (
	"testing"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
)

func TestRecommend_PerLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level          knowledge.Level
		wantFirst      string
		wantHours      int
		wantSpecialist bool
		wantColor      string
	}{
		{knowledge.LevelCritical, "Call emergency services (108)", 0, true, "red"},
		{knowledge.LevelHigh, "Visit emergency department within 1-2 hours", 2, true, "orange"},
		{knowledge.LevelMedium, "Schedule doctor appointment within 24 hours", 24, false, "yellow"},
		{knowledge.LevelLow, "Monitor symptoms", 48, false, "green"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()
			b := Recommend(tt.level)

			if len(b.ImmediateActions) == 0 || b.ImmediateActions[0] != tt.wantFirst {
				t.Errorf("ImmediateActions = %v, want first %q", b.ImmediateActions, tt.wantFirst)
			}
			if b.FollowUpHours != tt.wantHours {
				t.Errorf("FollowUpHours = %d, want %d", b.FollowUpHours, tt.wantHours)
			}
			if b.SpecialistNeeded != tt.wantSpecialist || b.EscalationRequired != tt.wantSpecialist {
				t.Errorf("flags = (%v, %v), want both %v", b.SpecialistNeeded, b.EscalationRequired, tt.wantSpecialist)
			}
			if b.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", b.Color, tt.wantColor)
			}
			if len(b.HindiRecommendations) == 0 {
				t.Error("expected Hindi recommendations")
			}
			if len(b.FollowUp) == 0 || len(b.Monitoring) == 0 {
				t.Error("expected follow-up and monitoring lists")
			}
			if b.Action == "" || b.HindiAction == "" || b.WaitTime == "" {
				t.Error("expected populated action and wait time text")
			}
		})
	}
}
