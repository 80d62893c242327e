package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rifat-hossain/matricheck/internal/bridge"
	"github.com/rifat-hossain/matricheck/internal/config"
	"github.com/rifat-hossain/matricheck/internal/i18n"
	"github.com/rifat-hossain/matricheck/internal/workflow"
)

// fakeCaller scripts bridge payloads and counts calls per operation.
// Write calls also keep the record they carried. Zero-value fields fall
// back to healthy defaults.
type fakeCaller struct {
	assessBody  string
	historyBody string
	statsBody   string

	assessErr  error
	historyErr error
	pingErr    error

	assessCalls  int
	idCalls      int
	saveCalls    int
	reportCalls  int
	historyCalls int
	statsCalls   int

	lastSave   bridge.RecordRequest
	lastReport bridge.RecordRequest
}

func (f *fakeCaller) AssessRisk(context.Context, bridge.AssessRequest) ([]byte, error) {
	f.assessCalls++
	if f.assessErr != nil {
		return nil, f.assessErr
	}
	body := f.assessBody
	if body == "" {
		body = `{"risk_level":"High","confidence":92,"probabilities":{"low":3,"moderate":12,"high":85},"bmi":23.4,"model_used":"Full Model (5 features)","lab_available":true}`
	}
	return []byte(body), nil
}

func (f *fakeCaller) GeneratePatientID(context.Context) ([]byte, error) {
	f.idCalls++
	return []byte(`{"success":true,"patient_id":"PAT-20260815-4F2A"}`), nil
}

func (f *fakeCaller) SaveAssessment(_ context.Context, rec bridge.RecordRequest) ([]byte, error) {
	f.saveCalls++
	f.lastSave = rec
	return []byte(`{"success":true,"message":"Assessment saved successfully"}`), nil
}

func (f *fakeCaller) GeneratePDFReport(_ context.Context, rec bridge.RecordRequest) ([]byte, error) {
	f.reportCalls++
	f.lastReport = rec
	return []byte(`{"success":true,"filename":"assessment_PAT-20260815-4F2A_20260815_103000.txt"}`), nil
}

func (f *fakeCaller) LoadHistory(context.Context) ([]byte, error) {
	f.historyCalls++
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	body := f.historyBody
	if body == "" {
		body = `[]`
	}
	return []byte(body), nil
}

func (f *fakeCaller) DashboardStats(context.Context) ([]byte, error) {
	f.statsCalls++
	body := f.statsBody
	if body == "" {
		body = `{"risk_counts":{"low":0,"moderate":0,"high":0},"total":0,"weekly_trend":[],"top_factors":[]}`
	}
	return []byte(body), nil
}

func (f *fakeCaller) Ping(context.Context) error { return f.pingErr }

func newTestApp(t *testing.T, fake bridge.Caller) *App {
	t.Helper()
	var cfg config.Config
	cfg.UI.Language = string(i18n.English)
	cfg.Bridge.TimeoutSeconds = 5
	return New(context.Background(), cfg, fake, zerolog.Nop())
}

// press feeds one key and returns whatever command the update produced.
func press(a *App, msg tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

// run executes a command synchronously, feeds the resulting message back
// into the model and returns the follow-up command.
func run(a *App, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var next []tea.Cmd
		for _, c := range batch {
			if n := run(a, c); n != nil {
				next = append(next, n)
			}
		}
		return tea.Batch(next...)
	}
	_, next := a.Update(msg)
	return next
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCtrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyCtrlL = tea.KeyMsg{Type: tea.KeyCtrlL}
)

func TestStartupPingSetsStatus(t *testing.T) {
	t.Parallel()

	up := newTestApp(t, &fakeCaller{})
	run(up, up.Init())
	require.Equal(t, up.loc.T("status.connected"), up.status)
	require.False(t, up.statusErr)

	down := newTestApp(t, &fakeCaller{pingErr: errors.New("refused")})
	run(down, down.Init())
	require.Equal(t, down.loc.T("err.bridge_down"), down.status)
	require.True(t, down.statusErr)
}

func TestEntryActionsRefireOnEveryEntry(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{}
	a := newTestApp(t, fake)

	run(a, press(a, keyTab)) // form -> history
	require.Equal(t, 1, fake.historyCalls)

	run(a, press(a, keyRune('1'))) // back to the form, no fetch
	require.Equal(t, 1, fake.historyCalls)

	run(a, press(a, keyTab)) // history again
	require.Equal(t, 2, fake.historyCalls)

	run(a, press(a, keyTab)) // dashboard
	require.Equal(t, 1, fake.statsCalls)

	run(a, press(a, keyRune('2'))) // history a third time
	run(a, press(a, keyRune('3'))) // dashboard a second time
	require.Equal(t, 3, fake.historyCalls)
	require.Equal(t, 2, fake.statsCalls)
}

func TestAssessTriggerLockedDuringCall(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{assessErr: errors.New("connection reset")}
	a := newTestApp(t, fake)

	first := press(a, keyEnter)
	require.NotNil(t, first)
	require.Equal(t, phaseCalculating, a.phase)

	// second trigger while the call is in flight does nothing
	require.Nil(t, press(a, keyEnter))
	require.Equal(t, 0, fake.assessCalls)

	run(a, first)
	require.Equal(t, 1, fake.assessCalls)
	require.Equal(t, phaseIdle, a.phase)
	require.True(t, a.statusErr)

	// the failure re-armed the trigger
	require.NotNil(t, press(a, keyEnter))
}

func TestAssessResultRendersVector(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{}
	a := newTestApp(t, fake)
	a.form.inputs[fieldAge].SetValue("28")
	a.form.inputs[fieldWeight].SetValue("60")
	a.form.inputs[fieldHeight].SetValue("160")
	a.form.inputs[fieldSystolic].SetValue("160")
	a.form.inputs[fieldDiastolic].SetValue("110")

	follow := run(a, press(a, keyEnter))
	require.NotNil(t, a.current)
	require.Equal(t, workflow.RiskHigh, a.current.RiskLevel)
	require.InDelta(t, 92.0, a.current.Confidence, 0.001)
	require.NotNil(t, follow) // gauge animation started

	view := ansi.Strip(a.View())
	require.Contains(t, view, "High Risk")
	require.Contains(t, view, "85.0%")
	require.Contains(t, view, "12.0%")
	require.Contains(t, view, "3.0%")
	require.Contains(t, view, "Full Model (5 features)")
}

func TestProbabilityBarsUseRawValues(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{assessBody: `{"risk_level":"Moderate","confidence":40,"probabilities":{"low":40,"moderate":40,"high":40},"bmi":22.0,"model_used":"Basic Model (3 features)","lab_available":false}`}
	a := newTestApp(t, fake)
	run(a, press(a, keyEnter))

	// a value of 40 fills 40% of the track, not a third of it
	wantFilled := probBarWidth * 40 / 100
	var barLines int
	for _, line := range strings.Split(ansi.Strip(a.View()), "\n") {
		if !strings.Contains(line, "40.0%") {
			continue
		}
		barLines++
		require.Equal(t, wantFilled, strings.Count(line, "█"), "line %q", line)
	}
	require.Equal(t, 3, barLines)
}

func TestGaugeShowsRoundedConfidence(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &fakeCaller{})
	require.Contains(t, ansi.Strip(a.gauge.ViewAs(0.876)), "88%")
	require.Contains(t, ansi.Strip(a.gauge.ViewAs(0.92)), "92%")
}

func TestSaveWithoutResultShowsError(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{}
	a := newTestApp(t, fake)

	require.Nil(t, press(a, keyCtrlS))
	require.True(t, a.statusErr)
	require.Equal(t, a.loc.T("err.no_result_save"), a.status)
	require.Zero(t, fake.saveCalls)
	require.Zero(t, fake.idCalls)
}

func TestReportWithoutResultShowsError(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{}
	a := newTestApp(t, fake)

	require.Nil(t, press(a, keyCtrlR))
	require.True(t, a.statusErr)
	require.Equal(t, a.loc.T("err.no_result_report"), a.status)
	require.Zero(t, fake.reportCalls)
}

func TestSaveUsesGeneratedIDInStatus(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{}
	a := newTestApp(t, fake)
	a.current = &workflow.AssessmentResult{
		RiskLevel:  workflow.RiskHigh,
		Confidence: 92,
		BMI:        23.4,
		ModelUsed:  "Full Model (5 features)",
	}

	cmd := press(a, keyCtrlS)
	require.NotNil(t, cmd)
	require.True(t, a.saving)
	require.Nil(t, press(a, keyCtrlS)) // locked while saving

	run(a, cmd)
	require.False(t, a.saving)
	require.Equal(t, 1, fake.idCalls)
	require.Equal(t, 1, fake.saveCalls)
	require.False(t, a.statusErr)
	require.Contains(t, a.status, "PAT-20260815-4F2A")
}

func TestSaveWritesResolvedIDBackToField(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{}
	a := newTestApp(t, fake)
	a.current = &workflow.AssessmentResult{
		RiskLevel:  workflow.RiskHigh,
		Confidence: 92,
		BMI:        23.4,
		ModelUsed:  "Full Model (5 features)",
	}

	run(a, press(a, keyCtrlS))
	require.Equal(t, 1, fake.idCalls)
	require.Equal(t, "PAT-20260815-4F2A", a.form.inputs[fieldPatientID].Value())
	require.Equal(t, "PAT-20260815-4F2A", fake.lastSave.PatientID)

	// the follow-up report is attributed to the stored id, not a blank field
	run(a, press(a, keyCtrlR))
	require.Equal(t, "PAT-20260815-4F2A", fake.lastReport.PatientID)

	// a second save reuses the id instead of generating another
	run(a, press(a, keyCtrlS))
	require.Equal(t, 1, fake.idCalls)
	require.Equal(t, 2, fake.saveCalls)
	require.Equal(t, "PAT-20260815-4F2A", fake.lastSave.PatientID)
}

func TestReportRestoresControlAfterSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{}
	a := newTestApp(t, fake)
	a.current = &workflow.AssessmentResult{RiskLevel: workflow.RiskLow, Confidence: 86.8}

	cmd := press(a, keyCtrlR)
	require.NotNil(t, cmd)
	require.True(t, a.reporting)

	run(a, cmd)
	require.False(t, a.reporting)
	require.Equal(t, 1, fake.reportCalls)
	require.Contains(t, a.status, "assessment_PAT-20260815-4F2A_20260815_103000.txt")
	require.NotNil(t, press(a, keyCtrlR)) // usable again
}

func TestLanguageToggleRelabelsWithoutRecompute(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &fakeCaller{})
	a.form.inputs[fieldWeight].SetValue("45")
	a.form.inputs[fieldHeight].SetValue("160")

	view := ansi.Strip(a.View())
	require.Contains(t, view, "17.6")
	require.Contains(t, view, "Underweight")

	// the persist command is left unexecuted so the test touches no files
	require.NotNil(t, press(a, keyCtrlL))
	require.Equal(t, i18n.Bangla, a.loc.Lang())
	require.Equal(t, string(i18n.Bangla), a.cfg.UI.Language)
	require.Contains(t, a.status, "বাংলা")

	view = ansi.Strip(a.View())
	require.Contains(t, view, "17.6")
	require.Contains(t, view, "কম ওজন")
	require.NotContains(t, view, "Underweight")

	require.NotNil(t, press(a, keyCtrlL))
	require.Equal(t, i18n.English, a.loc.Lang())
	require.Contains(t, ansi.Strip(a.View()), "Underweight")
}

func TestResultRelabelsOnLanguageSwitch(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{}
	a := newTestApp(t, fake)
	run(a, press(a, keyEnter))
	require.Equal(t, 1, fake.assessCalls)
	require.Contains(t, ansi.Strip(a.View()), "High Risk")

	press(a, keyCtrlL)
	require.Contains(t, ansi.Strip(a.View()), "উচ্চ ঝুঁকি")
	// relabeling is pure rendering; no second scoring call happened
	require.Equal(t, 1, fake.assessCalls)
}

func TestLabToggleRevealsFields(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &fakeCaller{})
	for i := 0; i < int(fieldLabToggle); i++ {
		press(a, keyDown)
	}
	require.True(t, a.form.labFocused())

	// lab fields are skipped while the toggle is off
	press(a, keyDown)
	require.Equal(t, fieldPatientID, a.form.focus)

	press(a, keyUp)
	require.True(t, a.form.labFocused())
	press(a, keySpace)
	require.True(t, a.form.lab)

	press(a, keyDown)
	require.Equal(t, fieldBloodSugar, a.form.focus)
	press(a, keyDown)
	require.Equal(t, fieldHemoglobin, a.form.focus)
	press(a, keyDown)
	require.Equal(t, fieldPatientID, a.form.focus)
}

func TestHistoryRendersRowsAsReceived(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{historyBody: `[
		{"Timestamp":"2026-08-15 10:30:00","Patient_ID":"PAT-1","Age":"28","BMI":"23.4","SystolicBP":"120","DiastolicBP":"80","Blood_Sugar":"N/A","Hemoglobin":"N/A","Risk_Level":"Low","Confidence":"86.8%","Model_Used":"Basic Model (3 features)","Lab_Available":"No","Health_Worker":"N/A"},
		{"Timestamp":"yesterday","Patient_ID":"PAT-2","Age":"34","BMI":"31.2","SystolicBP":"150","DiastolicBP":"95","Blood_Sugar":"12.1","Hemoglobin":"8.4","Risk_Level":"High","Confidence":"71.8%","Model_Used":"Full Model (5 features)","Lab_Available":"Yes","Health_Worker":"Rina"}
	]`}
	a := newTestApp(t, fake)
	run(a, press(a, keyTab))
	require.Len(t, a.history, 2)

	view := ansi.Strip(a.View())
	require.Contains(t, view, "PAT-1")
	require.Contains(t, view, "15 Aug 2026 10:30") // parsed and reformatted
	require.Contains(t, view, "yesterday")         // unparseable stays raw
	require.Contains(t, view, "120/80")
	require.Contains(t, view, "86.8%")
	require.Contains(t, view, "71.8%")
}

func TestHistoryFailureSetsStatus(t *testing.T) {
	t.Parallel()

	fake := &fakeCaller{historyErr: errors.New("connection reset")}
	a := newTestApp(t, fake)
	run(a, press(a, keyTab))

	require.Empty(t, a.history)
	require.True(t, a.statusErr)
	require.Contains(t, ansi.Strip(a.View()), a.loc.T("history.empty"))
}
