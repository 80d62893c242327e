package tui

import "strings"

// renderDashboard composes the three aggregate panels from the latest
// fetch. Each panel redraw retires its previous handle before drawing.
func (a *App) renderDashboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.loc.T("dash.title")) + "\n\n")
	if !a.statsOK {
		b.WriteString(mutedStyle.Render(a.loc.T("status.loading_stats")))
		return b.String()
	}

	trendWidth := a.width - 4
	if trendWidth > 64 {
		trendWidth = 64
	}
	if trendWidth < 20 {
		trendWidth = 20
	}

	b.WriteString(labelStyle.Render(a.loc.T("dash.distribution")) + "\n")
	b.WriteString(a.renderDistribution(distBarWidth) + "\n\n")
	b.WriteString(labelStyle.Render(a.loc.T("dash.trend")) + "\n")
	b.WriteString(a.renderTrendChart(trendWidth) + "\n\n")
	b.WriteString(labelStyle.Render(a.loc.T("dash.factors")) + "\n")
	b.WriteString(a.renderFactors())
	return b.String()
}
