package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rifat-hossain/matricheck/internal/vitals"
	"github.com/rifat-hossain/matricheck/internal/workflow"
)

type formField int

const (
	fieldPatientID formField = iota
	fieldHealthWorker
	fieldAge
	fieldWeight
	fieldHeight
	fieldSystolic
	fieldDiastolic
	fieldLabToggle
	fieldBloodSugar
	fieldHemoglobin
	fieldCount
)

func (f formField) labelKey() string {
	switch f {
	case fieldPatientID:
		return "form.patient_id"
	case fieldHealthWorker:
		return "form.health_worker"
	case fieldAge:
		return "form.age"
	case fieldWeight:
		return "form.weight"
	case fieldHeight:
		return "form.height"
	case fieldSystolic:
		return "form.systolic"
	case fieldDiastolic:
		return "form.diastolic"
	case fieldLabToggle:
		return "form.lab_available"
	case fieldBloodSugar:
		return "form.blood_sugar"
	}
	return "form.hemoglobin"
}

// formState is the text state of the assessment form. The toggle row owns
// the slot at fieldLabToggle but never uses its input.
type formState struct {
	inputs [fieldCount]textinput.Model
	focus  formField
	lab    bool
}

func newForm() formState {
	var f formState
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 8
		in.Width = 20
		f.inputs[i] = in
	}
	f.inputs[fieldPatientID].CharLimit = 24
	f.inputs[fieldHealthWorker].CharLimit = 40
	f.focus = fieldPatientID
	f.inputs[fieldPatientID].Focus()
	return f
}

// visible reports whether the field currently has a row. Lab measurements
// exist only while the toggle is on.
func (f *formState) visible(fld formField) bool {
	switch fld {
	case fieldBloodSugar, fieldHemoglobin:
		return f.lab
	}
	return true
}

func (f *formState) setFocus(fld formField) {
	f.inputs[f.focus].Blur()
	f.focus = fld
	if fld != fieldLabToggle {
		f.inputs[fld].Focus()
	}
}

func (f *formState) move(dir int) {
	next := f.focus
	for {
		next = formField((int(next) + dir + int(fieldCount)) % int(fieldCount))
		if f.visible(next) {
			break
		}
	}
	f.setFocus(next)
}

func (f *formState) focusNext() { f.move(1) }
func (f *formState) focusPrev() { f.move(-1) }

func (f *formState) labFocused() bool { return f.focus == fieldLabToggle }

func (f *formState) toggleLab() { f.lab = !f.lab }

func (f *formState) update(msg tea.Msg) tea.Cmd {
	if f.focus == fieldLabToggle {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formState) data() workflow.FormData {
	return workflow.FormData{
		PatientID:    strings.TrimSpace(f.inputs[fieldPatientID].Value()),
		HealthWorker: strings.TrimSpace(f.inputs[fieldHealthWorker].Value()),
		Age:          f.inputs[fieldAge].Value(),
		Weight:       f.inputs[fieldWeight].Value(),
		Height:       f.inputs[fieldHeight].Value(),
		Systolic:     f.inputs[fieldSystolic].Value(),
		Diastolic:    f.inputs[fieldDiastolic].Value(),
		BloodSugar:   f.inputs[fieldBloodSugar].Value(),
		Hemoglobin:   f.inputs[fieldHemoglobin].Value(),
		LabAvailable: f.lab,
	}
}

func (f *formState) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.lab = false
	f.setFocus(fieldPatientID)
}

const formLabelWidth = 22

func (a *App) renderForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.loc.T("form.title")))
	b.WriteString("\n\n")

	a.form.inputs[fieldPatientID].Placeholder = a.loc.T("form.patient_id_hint")

	for fld := formField(0); fld < fieldCount; fld++ {
		if !a.form.visible(fld) {
			continue
		}
		b.WriteString(a.renderFormRow(fld))
		b.WriteString("\n")
		if fld == fieldHeight {
			b.WriteString(a.renderBMILine())
		}
	}

	form := lipgloss.NewStyle().Width(formLabelWidth + 26).Render(b.String())
	result := a.renderResult()
	if a.width >= 98 {
		return lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", result)
	}
	return form + "\n" + result
}

func (a *App) renderFormRow(fld formField) string {
	label := a.loc.T(fld.labelKey())
	style := labelStyle
	marker := "  "
	if fld == a.form.focus {
		style = focusStyle
		marker = focusStyle.Render("> ")
	}
	label = style.Width(formLabelWidth).Render(label)

	var value string
	if fld == fieldLabToggle {
		key := "form.no"
		if a.form.lab {
			key = "form.yes"
		}
		value = valueStyle.Render("[" + a.loc.T(key) + "]")
	} else {
		value = a.form.inputs[fld].View()
	}
	return marker + label + " " + value
}

// renderBMILine is the reactive readout under the height row. It stays
// blank rather than erroring while either measurement is missing or zero.
func (a *App) renderBMILine() string {
	w, wok := a.form.data().WeightKg()
	h, hok := a.form.data().HeightCm()
	if !wok || !hok {
		return "\n\n"
	}
	bmi, ok := vitals.BMI(w, h)
	if !ok {
		return "\n\n"
	}
	line := fmt.Sprintf("%s: %.1f  %s",
		a.loc.T("form.bmi"), bmi, a.loc.T(vitals.BandKey(bmi)))
	return strings.Repeat(" ", formLabelWidth+3) + valueStyle.Render(line) + "\n\n"
}
