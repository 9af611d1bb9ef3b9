package knowledge

import "testing"

func TestEmergencyTiers_OrderedHighestFirst(t *testing.T) {
	t.Parallel()

	tiers := EmergencyTiers()
	if len(tiers) != 3 {
		t.Fatalf("tiers = %d, want 3", len(tiers))
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Level >= tiers[i-1].Level {
			t.Errorf("tier %d level %v not below tier %d level %v", i, tiers[i].Level, i-1, tiers[i-1].Level)
		}
	}
	if tiers[0].Level != LevelCritical {
		t.Errorf("first tier = %v, want critical", tiers[0].Level)
	}
}

func TestSeverityLexicon_OrderedHighestFirst(t *testing.T) {
	t.Parallel()

	lex := SeverityLexicon()
	if len(lex) != 4 {
		t.Fatalf("lexicon tiers = %d, want 4", len(lex))
	}
	if lex[0].Level != LevelCritical || lex[len(lex)-1].Level != LevelLow {
		t.Errorf("lexicon must run critical..low, got %v..%v", lex[0].Level, lex[len(lex)-1].Level)
	}
}

func TestDescriptorFor_AllLevels(t *testing.T) {
	t.Parallel()

	wantRank := map[Level]int{
		LevelCritical: 1,
		LevelHigh:     2,
		LevelMedium:   3,
		LevelLow:      4,
	}
	for l, rank := range wantRank {
		d := DescriptorFor(l)
		if d.Rank != rank {
			t.Errorf("DescriptorFor(%v).Rank = %d, want %d", l, d.Rank, rank)
		}
		if d.Action == "" || d.HindiAction == "" {
			t.Errorf("DescriptorFor(%v) has empty action text", l)
		}
		if d.WaitTime == "" || d.Color == "" {
			t.Errorf("DescriptorFor(%v) has empty wait time or color", l)
		}
	}
}

func TestContainsKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		keywords []string
		wantKW   string
		wantOK   bool
	}{
		{"english match", "i have a FEVER today", []string{"बुखार", "fever"}, "fever", true},
		{"hindi match", "मुझे बुखार है", []string{"बुखार", "fever"}, "बुखार", true},
		{"substring match", "unbearable headaches", []string{"headache"}, "headache", true},
		{"no match", "feeling fine", []string{"बुखार", "fever"}, "", false},
		{"empty text", "", []string{"fever"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			kw, ok := ContainsKeyword(tt.text, tt.keywords)
			if ok != tt.wantOK || kw != tt.wantKW {
				t.Errorf("ContainsKeyword(%q) = (%q, %v), want (%q, %v)", tt.text, kw, ok, tt.wantKW, tt.wantOK)
			}
		})
	}
}

func TestConditions_HaveBilingualKeywords(t *testing.T) {
	t.Parallel()

	for _, c := range Conditions() {
		if c.ID == "" || c.HindiName == "" {
			t.Errorf("condition %+v missing ID or Hindi name", c)
		}
		if len(c.Keywords) == 0 {
			t.Errorf("condition %q has no keywords", c.ID)
		}
	}
}
