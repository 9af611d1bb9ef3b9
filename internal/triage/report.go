package triage

import (
	"fmt"
	"strings"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
)

// RenderReport produces the ordered, bilingual triage report for one result:
// header, level, matched symptoms with severities, risk factors, then the
// Hindi recommendations. Pure formatting, no side effects.
func RenderReport(level knowledge.Level, trail *Trail, bundle *Bundle) string {
	d := knowledge.DescriptorFor(level)

	var b strings.Builder
	b.WriteString("मेडिकल ट्राइएज रिपोर्ट\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")

	fmt.Fprintf(&b, "ट्राइएज स्तर: %s\n", strings.ToUpper(level.String()))
	fmt.Fprintf(&b, "हिंदी: %s\n", d.HindiDescription)
	fmt.Fprintf(&b, "प्रतीक्षा समय: %s\n", d.WaitTime)
	b.WriteString("\n")

	if len(trail.Symptoms) > 0 {
		b.WriteString("पहचाने गए लक्षण:\n")
		for _, m := range trail.Symptoms {
			fmt.Fprintf(&b, "- %s (%s severity)\n", m.HindiName, m.Severity)
		}
	}

	if len(trail.RiskFactors) > 0 {
		b.WriteString("\nजोखिम कारक:\n")
		for _, f := range trail.RiskFactors {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	b.WriteString("\nसिफारिशें:\n")
	for _, rec := range bundle.HindiRecommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return strings.TrimRight(b.String(), "\n")
}
