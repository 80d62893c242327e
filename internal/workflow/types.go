// Package workflow orchestrates the bridge calls behind the client UI:
// payload parsing, error classification, patient-id resolution and the
// record merge. Everything here is synchronous; the UI layer decides what
// runs on which turn.
package workflow

import (
	"strconv"
	"strings"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

// RiskLevel is the wire value of a classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// LabelKey returns the localization key for the level's display label.
func (r RiskLevel) LabelKey() string {
	switch r {
	case RiskLow:
		return "risk.low"
	case RiskModerate:
		return "risk.moderate"
	case RiskHigh:
		return "risk.high"
	}
	return string(r)
}

// RecommendationKey returns the localization key prefix for the level's
// recommendation block.
func (r RiskLevel) RecommendationKey() string {
	switch r {
	case RiskModerate:
		return "rec.moderate"
	case RiskHigh:
		return "rec.high"
	}
	return "rec.low"
}

// Probabilities is the class probability triple as returned by the model.
// The values are expected to sum to roughly 100 but are rendered as given;
// nothing on the client normalizes them.
type Probabilities struct {
	Low      float64 `json:"low"`
	Moderate float64 `json:"moderate"`
	High     float64 `json:"high"`
}

// AssessmentResult is one completed scoring. Results are never mutated; a
// new one replaces the current one wholesale.
type AssessmentResult struct {
	RiskLevel     RiskLevel
	Confidence    float64
	Probabilities Probabilities
	BMI           float64
	ModelUsed     string
	LabAvailable  bool
}

// FormData is the text state of the assessment form, owned by the active
// session. Numeric fields stay as typed; parsing happens at snapshot time
// so unset and unreadable values can default silently.
type FormData struct {
	PatientID    string
	HealthWorker string
	Age          string
	Weight       string
	Height       string
	Systolic     string
	Diastolic    string
	BloodSugar   string
	Hemoglobin   string
	LabAvailable bool
}

// AssessRequest snapshots the measurements for one scoring call. Blank or
// unparseable fields become zero.
func (f FormData) AssessRequest() bridge.AssessRequest {
	return bridge.AssessRequest{
		Age:          num(f.Age),
		Weight:       num(f.Weight),
		Height:       num(f.Height),
		Systolic:     num(f.Systolic),
		Diastolic:    num(f.Diastolic),
		BloodSugar:   num(f.BloodSugar),
		Hemoglobin:   num(f.Hemoglobin),
		LabAvailable: f.LabAvailable,
	}
}

// Weight and Height return the live field values for the reactive BMI
// display; ok is false while the field is blank or unreadable.
func (f FormData) WeightKg() (float64, bool) { return numOK(f.Weight) }
func (f FormData) HeightCm() (float64, bool) { return numOK(f.Height) }

func num(s string) float64 {
	v, _ := numOK(s)
	return v
}

func numOK(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
