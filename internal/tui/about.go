package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderAbout shows the app description and scoring models. The weights
// chart initializes a beat after entry so switching views stays snappy.
func (a *App) renderAbout() string {
	descWidth := a.width - 4
	if descWidth > 72 {
		descWidth = 72
	}
	if descWidth < 20 {
		descWidth = 20
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.loc.T("about.title")) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(descWidth).Render(a.loc.T("about.desc")) + "\n\n")
	b.WriteString(labelStyle.Render(a.loc.T("about.models")) + "\n")
	b.WriteString("  - " + a.loc.T("about.full_model") + "\n")
	b.WriteString("  - " + a.loc.T("about.basic_model") + "\n\n")
	b.WriteString(labelStyle.Render(a.loc.T("about.weights")) + "\n")
	if !a.aboutReady {
		b.WriteString(mutedStyle.Render("…"))
		return b.String()
	}
	b.WriteString(a.renderWeightsChart())
	return b.String()
}

// renderWeightsChart draws the per-feature score ceilings of the full
// model, scaled against the largest.
func (a *App) renderWeightsChart() string {
	rows := []struct {
		key    string
		weight int
	}{
		{"form.systolic", 3},
		{"form.diastolic", 3},
		{"form.blood_sugar", 3},
		{"form.hemoglobin", 3},
		{"form.bmi", 2},
	}
	top := 0
	for _, r := range rows {
		if r.weight > top {
			top = r.weight
		}
	}

	var b strings.Builder
	for i, r := range rows {
		filled := factorBarWidth * r.weight / top
		bar := lipgloss.NewStyle().Foreground(colorMauve).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", factorBarWidth-filled))
		label := labelStyle.Render(cell(a.loc.T(r.key), factorLabelW))
		b.WriteString(fmt.Sprintf("%s %s %d", label, bar, r.weight))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	out := b.String()
	a.charts.weights.adopt(&out)
	return out
}
