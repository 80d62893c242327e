package tui

import (
	"fmt"
	"strings"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// surface owns at most one live chart handle. Adopting a new handle
// retires the previous one first, so a redraw never leaves two alive.
type surface struct {
	live any
}

func (s *surface) retire() { s.live = nil }

func (s *surface) adopt(h any) {
	s.retire()
	s.live = h
}

func (s *surface) isLive() bool { return s.live != nil }

// chartSet tracks the handle of every surface that draws a chart.
type chartSet struct {
	distribution surface
	trend        surface
	factors      surface
	weights      surface
}

const (
	trendHeight    = 8
	distBarWidth   = 40
	factorBarWidth = 22
	factorLabelW   = 24
)

// renderTrendChart draws the seven-day series. The y axis starts at zero
// whatever the counts are, so a quiet week does not read as a cliff.
func (a *App) renderTrendChart(width int) string {
	a.charts.trend.retire()

	points := make([]tslc.TimePoint, 0, len(a.stats.Trend))
	var last time.Time
	maxCount := 0
	for _, p := range a.stats.Trend {
		day, ok := p.Day()
		if !ok {
			continue
		}
		points = append(points, tslc.TimePoint{Time: day, Value: float64(p.Count)})
		if day.After(last) {
			last = day
		}
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}
	if len(points) == 0 {
		return mutedStyle.Render(a.loc.T("dash.no_data"))
	}
	if maxCount == 0 {
		maxCount = 1
	}
	start := last.AddDate(0, 0, -6)

	chart := tslc.New(width, trendHeight)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorTeal))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	chart.SetTimeRange(start, last)
	chart.SetViewTimeRange(start, last)
	chart.SetYRange(0, float64(maxCount))
	chart.SetViewYRange(0, float64(maxCount))
	chart.Model.XLabelFormatter = trendXLabel
	chart.Model.YLabelFormatter = trendYLabel

	for _, p := range points {
		chart.Push(p)
	}
	chart.DrawBraille()

	a.charts.trend.adopt(&chart)
	return chart.View()
}

func trendXLabel(_ int, v float64) string {
	return time.Unix(int64(v), 0).UTC().Format("02/01")
}

func trendYLabel(_ int, v float64) string {
	if v < 0 {
		return ""
	}
	return fmt.Sprintf("%.0f", v)
}

// renderDistribution draws the level proportions as one stacked bar with
// the series total centered under it. Segment boundaries are cumulative,
// so the widths always add up to the track width.
func (a *App) renderDistribution(width int) string {
	a.charts.distribution.retire()

	c := a.stats.Counts
	total := c.Low + c.Moderate + c.High
	if total == 0 {
		return mutedStyle.Render(a.loc.T("dash.no_data"))
	}
	if width < 12 {
		width = 12
	}

	b1 := width * c.Low / total
	b2 := width * (c.Low + c.Moderate) / total
	bar := lipgloss.NewStyle().Foreground(colorRiskLow).Render(strings.Repeat("█", b1)) +
		lipgloss.NewStyle().Foreground(colorRiskModerate).Render(strings.Repeat("█", b2-b1)) +
		lipgloss.NewStyle().Foreground(colorRiskHigh).Render(strings.Repeat("█", width-b2))

	totalLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(colorMuted).
		Render(fmt.Sprintf(a.loc.T("dash.total"), a.stats.Total))

	legend := strings.Join([]string{
		a.legendEntry("risk.low", c.Low, total, colorRiskLow),
		a.legendEntry("risk.moderate", c.Moderate, total, colorRiskModerate),
		a.legendEntry("risk.high", c.High, total, colorRiskHigh),
	}, "   ")

	out := bar + "\n" + totalLine + "\n" + legend
	a.charts.distribution.adopt(&out)
	return out
}

func (a *App) legendEntry(key string, count, total int, color lipgloss.Color) string {
	pct := 0.0
	if total > 0 {
		pct = float64(count) / float64(total) * 100
	}
	dot := lipgloss.NewStyle().Foreground(color).Render("■")
	return fmt.Sprintf("%s %s %d (%.0f%%)", dot, a.loc.T(key), count, pct)
}

// renderFactors draws the ranked factor list. Bars scale against the top
// factor; each row keeps its raw count and share of assessments.
func (a *App) renderFactors() string {
	a.charts.factors.retire()

	if len(a.stats.Factors) == 0 {
		return mutedStyle.Render(a.loc.T("dash.no_data"))
	}
	top := 0
	for _, f := range a.stats.Factors {
		if f.Count > top {
			top = f.Count
		}
	}
	if top == 0 {
		top = 1
	}

	var b strings.Builder
	for i, f := range a.stats.Factors {
		filled := factorBarWidth * f.Count / top
		bar := lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", factorBarWidth-filled))
		label := labelStyle.Render(cell(a.loc.T("factor."+f.Code), factorLabelW))
		b.WriteString(fmt.Sprintf("%s %s %3d  %4.1f%%", label, bar, f.Count, f.Pct))
		if i < len(a.stats.Factors)-1 {
			b.WriteString("\n")
		}
	}
	out := b.String()
	a.charts.factors.adopt(&out)
	return out
}
