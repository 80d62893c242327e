package tui

import (
	"github.com/rifat-hossain/matricheck/internal/workflow"
)

type bridgeReadyMsg struct{ err error }

type assessDoneMsg struct {
	result workflow.AssessmentResult
	err    error
}

type saveDoneMsg struct {
	outcome workflow.SaveOutcome
	err     error
}

type reportDoneMsg struct {
	filename string
	err      error
}

type historyMsg struct {
	records []workflow.HistoryRecord
	err     error
}

type statsMsg struct {
	stats workflow.DashboardStats
	err   error
}

// aboutChartMsg fires after the short delay that postpones building the
// weights chart on the about view.
type aboutChartMsg struct{}

type langSavedMsg struct{ err error }
