package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const probBarWidth = 26

func (a *App) renderResult() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.loc.T("result.title")))
	b.WriteString("\n\n")

	if a.phase == phaseCalculating {
		b.WriteString(mutedStyle.Render(a.loc.T("status.assessing")))
		return a.resultPane(b.String())
	}
	if a.current == nil {
		b.WriteString(mutedStyle.Render(a.loc.T("result.empty")))
		return a.resultPane(b.String())
	}
	res := *a.current

	badge := riskStyle(string(res.RiskLevel)).Render(a.loc.T(res.RiskLevel.LabelKey()))
	b.WriteString(badge)
	if res.BMI > 0 {
		b.WriteString(fmt.Sprintf("   %s %.1f", labelStyle.Render(a.loc.T("form.bmi")), res.BMI))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(a.loc.T("result.confidence")) + "\n")
	b.WriteString(a.gauge.View() + "\n\n")

	// The three class probabilities render as given; each bar's fill is the
	// raw value against a fixed 0..100 track, not a share of the triple.
	b.WriteString(labelStyle.Render(a.loc.T("result.probabilities")) + "\n")
	b.WriteString(a.probBar("risk.low", res.Probabilities.Low, colorRiskLow))
	b.WriteString(a.probBar("risk.moderate", res.Probabilities.Moderate, colorRiskModerate))
	b.WriteString(a.probBar("risk.high", res.Probabilities.High, colorRiskHigh))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(a.loc.T("result.model")+":") + " " + res.ModelUsed + "\n")
	lab := a.loc.T("form.no")
	if res.LabAvailable {
		lab = a.loc.T("form.yes")
	}
	b.WriteString(labelStyle.Render(a.loc.T("result.lab_used")+":") + " " + lab + "\n\n")

	prefix := res.RiskLevel.RecommendationKey()
	b.WriteString(titleStyle.Render(a.loc.T(prefix+".title")) + "\n")
	for _, suffix := range []string{".a1", ".a2", ".a3"} {
		b.WriteString("  - " + a.loc.T(prefix+suffix) + "\n")
	}
	b.WriteString(mutedStyle.Render(a.loc.T(prefix + ".note")))
	return a.resultPane(b.String())
}

// resultPane wraps the pane to a width that always holds a full probability
// row (14 label + 26 track + percentage); anything narrower would fold the
// bars onto two lines.
func (a *App) resultPane(s string) string {
	w := a.width - (formLabelWidth + 30)
	if w < 48 {
		w = 48
	}
	if w > 64 {
		w = 64
	}
	return lipgloss.NewStyle().Width(w).Render(s)
}

func (a *App) probBar(key string, value float64, color lipgloss.Color) string {
	filled := int(value / 100 * probBarWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > probBarWidth {
		filled = probBarWidth
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", probBarWidth-filled))
	label := labelStyle.Render(cell(a.loc.T(key), 14))
	return fmt.Sprintf("%s %s %5.1f%%\n", label, bar, value)
}
