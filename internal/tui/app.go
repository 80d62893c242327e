// Package tui is the terminal front end of the screening workflow: one
// Bubble Tea model owning the form session, the current result and the
// fetched views. Bridge calls run as commands; their completion messages
// land back on the single update loop, so no state is touched off-turn.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rifat-hossain/matricheck/internal/bridge"
	"github.com/rifat-hossain/matricheck/internal/config"
	"github.com/rifat-hossain/matricheck/internal/i18n"
	"github.com/rifat-hossain/matricheck/internal/workflow"
)

type viewState int

const (
	viewForm viewState = iota
	viewHistory
	viewDashboard
	viewAbout
)

var viewOrder = []viewState{viewForm, viewHistory, viewDashboard, viewAbout}

func (v viewState) titleKey() string {
	switch v {
	case viewHistory:
		return "nav.history"
	case viewDashboard:
		return "nav.dashboard"
	case viewAbout:
		return "nav.about"
	}
	return "nav.form"
}

func (v viewState) next() viewState { return viewOrder[(int(v)+1)%len(viewOrder)] }
func (v viewState) prev() viewState { return viewOrder[(int(v)+len(viewOrder)-1)%len(viewOrder)] }

type assessPhase int

const (
	phaseIdle assessPhase = iota
	phaseCalculating
)

const (
	gaugeWidth      = 40
	aboutChartDelay = 150 * time.Millisecond
)

// App ties together the four views and the active session.
type App struct {
	ctx    context.Context
	cfg    config.Config
	client bridge.Caller
	logger zerolog.Logger
	loc    *i18n.Localizer

	width  int
	height int
	view   viewState

	form  formState
	gauge progress.Model

	phase     assessPhase
	current   *workflow.AssessmentResult
	saving    bool
	reporting bool

	history    []workflow.HistoryRecord
	histCursor int

	stats   workflow.DashboardStats
	statsOK bool
	charts  chartSet

	aboutReady bool

	status    string
	statusErr bool
}

func New(ctx context.Context, cfg config.Config, client bridge.Caller, logger zerolog.Logger) *App {
	loc := i18n.New(i18n.Lang(cfg.UI.Language))
	return &App{
		ctx:    ctx,
		cfg:    cfg,
		client: client,
		logger: logger,
		loc:    loc,
		view:   viewForm,
		form:   newForm(),
		gauge:  progress.New(progress.WithSolidFill(string(colorAccent)), progress.WithWidth(gaugeWidth)),
		width:  100,
		height: 32,
	}
}

func (a *App) Init() tea.Cmd {
	a.status = a.loc.T("status.connecting")
	return a.checkBridgeCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height

	case tea.KeyMsg:
		return a.handleKey(m)

	case bridgeReadyMsg:
		if m.err != nil {
			a.logger.Warn().Err(m.err).Msg("bridge unavailable at startup")
			a.setStatus(a.loc.T("err.bridge_down"), true)
		} else {
			a.setStatus(a.loc.T("status.connected"), false)
		}

	case assessDoneMsg:
		return a.handleAssessDone(m)

	case saveDoneMsg:
		a.saving = false
		if m.err != nil {
			a.setStatus(a.describeError("err.save_failed", m.err), true)
			return a, nil
		}
		// The id the record went in under becomes the field text, so a
		// follow-up report or second save reuses it.
		a.form.inputs[fieldPatientID].SetValue(m.outcome.PatientID)
		a.setStatus(fmt.Sprintf(a.loc.T("status.saved"), m.outcome.PatientID), false)

	case reportDoneMsg:
		a.reporting = false
		if m.err != nil {
			a.setStatus(a.describeError("err.report_failed", m.err), true)
			return a, nil
		}
		a.setStatus(fmt.Sprintf(a.loc.T("status.report_ready"), m.filename), false)

	case historyMsg:
		if m.err != nil {
			a.history = nil
			a.setStatus(a.describeError("err.history_failed", m.err), true)
			return a, nil
		}
		a.history = m.records
		if a.histCursor >= len(a.history) {
			a.histCursor = 0
		}
		a.setStatus(a.loc.T("status.ready"), false)

	case statsMsg:
		if m.err != nil {
			a.statsOK = false
			a.setStatus(a.describeError("err.stats_failed", m.err), true)
			return a, nil
		}
		a.stats = m.stats
		a.statsOK = true
		a.setStatus(a.loc.T("status.ready"), false)

	case aboutChartMsg:
		a.aboutReady = true

	case langSavedMsg:
		// already logged by the command on failure

	case progress.FrameMsg:
		gm, cmd := a.gauge.Update(m)
		a.gauge = gm.(progress.Model)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "tab":
		return a, a.switchView(a.view.next())
	case "shift+tab":
		return a, a.switchView(a.view.prev())
	case "ctrl+l":
		return a, a.toggleLanguage()
	}

	if a.view == viewForm {
		return a.handleFormKey(m)
	}

	switch m.String() {
	case "q", "esc":
		return a, tea.Quit
	case "1":
		return a, a.switchView(viewForm)
	case "2":
		return a, a.switchView(viewHistory)
	case "3":
		return a, a.switchView(viewDashboard)
	case "4":
		return a, a.switchView(viewAbout)
	case "up", "k":
		if a.view == viewHistory && a.histCursor > 0 {
			a.histCursor--
		}
	case "down", "j":
		if a.view == viewHistory && a.histCursor < len(a.history)-1 {
			a.histCursor++
		}
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "enter":
		return a, a.startAssess()
	case "ctrl+s":
		return a, a.startSave()
	case "ctrl+r":
		return a, a.startReport()
	case "ctrl+n":
		a.resetSession()
		return a, nil
	case "up":
		a.form.focusPrev()
		return a, nil
	case "down":
		a.form.focusNext()
		return a, nil
	case " ", "left", "right":
		if a.form.labFocused() {
			a.form.toggleLab()
			return a, nil
		}
	}
	return a, a.form.update(m)
}

// switchView re-enters the target view. Entry actions fire on every entry,
// even re-entering the current view; nothing here is debounced.
func (a *App) switchView(v viewState) tea.Cmd {
	a.view = v
	switch v {
	case viewHistory:
		a.setStatus(a.loc.T("status.loading_history"), false)
		return a.loadHistoryCmd()
	case viewDashboard:
		a.setStatus(a.loc.T("status.loading_stats"), false)
		return a.loadStatsCmd()
	case viewAbout:
		a.aboutReady = false
		a.charts.weights.retire()
		return tea.Tick(aboutChartDelay, func(time.Time) tea.Msg { return aboutChartMsg{} })
	}
	return nil
}

// startAssess snapshots the form and launches one scoring call. While a
// call is in flight the trigger is dead; every completion path re-arms it.
func (a *App) startAssess() tea.Cmd {
	if a.phase == phaseCalculating {
		return nil
	}
	req := a.form.data().AssessRequest()
	a.phase = phaseCalculating
	a.setStatus(a.loc.T("status.assessing"), false)
	return func() tea.Msg {
		res, err := workflow.Assess(a.ctx, a.client, req)
		return assessDoneMsg{result: res, err: err}
	}
}

func (a *App) handleAssessDone(m assessDoneMsg) (tea.Model, tea.Cmd) {
	a.phase = phaseIdle
	if m.err != nil {
		a.setStatus(a.describeError("err.assess_failed", m.err), true)
		return a, nil
	}
	res := m.result
	a.current = &res
	a.setStatus(a.loc.T("status.ready"), false)
	return a, a.gauge.SetPercent(res.Confidence / 100)
}

func (a *App) startSave() tea.Cmd {
	if a.saving {
		return nil
	}
	if a.current == nil {
		a.setStatus(a.loc.T("err.no_result_save"), true)
		return nil
	}
	form := a.form.data()
	cur := *a.current
	a.saving = true
	a.setStatus(a.loc.T("status.saving"), false)
	return func() tea.Msg {
		out, err := workflow.Save(a.ctx, a.client, form, &cur, a.logger)
		return saveDoneMsg{outcome: out, err: err}
	}
}

func (a *App) startReport() tea.Cmd {
	if a.reporting {
		return nil
	}
	if a.current == nil {
		a.setStatus(a.loc.T("err.no_result_report"), true)
		return nil
	}
	form := a.form.data()
	cur := *a.current
	a.reporting = true
	a.setStatus(a.loc.T("status.generating"), false)
	return func() tea.Msg {
		name, err := workflow.Report(a.ctx, a.client, form, &cur, a.logger)
		return reportDoneMsg{filename: name, err: err}
	}
}

func (a *App) resetSession() {
	a.form.reset()
	a.current = nil
	a.phase = phaseIdle
	a.setStatus(a.loc.T("status.new"), false)
}

func (a *App) toggleLanguage() tea.Cmd {
	lang := a.loc.Toggle()
	a.cfg.UI.Language = string(lang)
	a.setStatus(fmt.Sprintf(a.loc.T("status.language"), lang.Native()), false)

	cfg := a.cfg
	logger := a.logger
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			logger.Warn().Err(err).Msg("could not persist language preference")
			return langSavedMsg{err: err}
		}
		return langSavedMsg{}
	}
}

func (a *App) checkBridgeCmd() tea.Cmd {
	return func() tea.Msg {
		if a.client == nil {
			return bridgeReadyMsg{err: workflow.ErrBridgeUnavailable}
		}
		ctx, cancel := context.WithTimeout(a.ctx, 3*time.Second)
		defer cancel()
		return bridgeReadyMsg{err: a.client.Ping(ctx)}
	}
}

func (a *App) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := workflow.History(a.ctx, a.client)
		return historyMsg{records: records, err: err}
	}
}

func (a *App) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := workflow.Stats(a.ctx, a.client)
		return statsMsg{stats: stats, err: err}
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// describeError maps a workflow error onto the status line. Declared
// backend errors and broken payloads land on the same line with the same
// severity; broken payloads carry their diagnostics in the log, not here.
func (a *App) describeError(formatKey string, err error) string {
	if errors.Is(err, workflow.ErrBridgeUnavailable) {
		return a.loc.T("err.bridge_down")
	}
	var cerr *workflow.ContractError
	if errors.As(err, &cerr) {
		return fmt.Sprintf(a.loc.T("err.contract"), cerr.Reason)
	}
	var berr *workflow.BusinessError
	if errors.As(err, &berr) {
		return fmt.Sprintf(a.loc.T(formatKey), berr.Message)
	}
	return fmt.Sprintf(a.loc.T(formatKey), err.Error())
}

func (a *App) View() string {
	header := a.renderHeader()
	status := a.renderStatusBar()
	footer := a.renderFooter()
	available := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}

	var body string
	switch a.view {
	case viewHistory:
		body = a.renderHistory(available)
	case viewDashboard:
		body = a.renderDashboard()
	case viewAbout:
		body = a.renderAbout()
	default:
		body = a.renderForm()
	}
	body = fitHeight(body, available)

	view := strings.Join([]string{header, status, body, footer}, "\n")
	return appStyle.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(view)
}
