package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	histColTime    = 18
	histColPatient = 16
	histColAge     = 4
	histColBMI     = 6
	histColBP      = 8
	histColRisk    = 9
	histColConf    = 7
)

// renderHistory lists stored assessments exactly as fetched; ordering and
// cell values belong to the store. Only the timestamp is reformatted for
// the active language, and only when it parses.
func (a *App) renderHistory(height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.loc.T("history.title")) + "\n\n")
	if len(a.history) == 0 {
		b.WriteString(mutedStyle.Render(a.loc.T("history.empty")))
		return b.String()
	}

	header := "  " + cell(a.loc.T("history.col.time"), histColTime) + " " +
		cell(a.loc.T("history.col.patient"), histColPatient) + " " +
		cell(a.loc.T("history.col.age"), histColAge) + " " +
		cell(a.loc.T("history.col.bmi"), histColBMI) + " " +
		cell(a.loc.T("history.col.bp"), histColBP) + " " +
		cell(a.loc.T("history.col.risk"), histColRisk) + " " +
		cell(a.loc.T("history.col.conf"), histColConf)
	b.WriteString(labelStyle.Render(header) + "\n")

	rows := height - 4
	if rows < 3 {
		rows = 3
	}
	start := 0
	if a.histCursor >= rows {
		start = a.histCursor - rows + 1
	}
	end := start + rows
	if end > len(a.history) {
		end = len(a.history)
	}

	for i := start; i < end; i++ {
		rec := a.history[i]
		when := rec.Timestamp
		if t, ok := rec.Time(); ok {
			when = a.loc.FormatTime(t)
		}
		marker := "  "
		if i == a.histCursor {
			marker = focusStyle.Render("> ")
		}
		risk := lipgloss.NewStyle().
			Foreground(riskColor(rec.RiskLevel)).
			Render(cell(rec.RiskLevel, histColRisk))
		b.WriteString(marker + cell(when, histColTime) + " " +
			cell(rec.PatientID, histColPatient) + " " +
			cell(rec.Age, histColAge) + " " +
			cell(rec.BMI, histColBMI) + " " +
			cell(rec.Systolic+"/"+rec.Diastolic, histColBP) + " " +
			risk + " " +
			cell(rec.Confidence, histColConf) + "\n")
	}
	if len(a.history) > rows {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d-%d / %d", start+1, end, len(a.history))))
	}
	return strings.TrimRight(b.String(), "\n")
}
