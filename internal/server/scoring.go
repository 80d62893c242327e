package server

import (
	"errors"
	"math"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

const (
	modelFull  = "Full Model (5 features)"
	modelBasic = "Basic Model (3 features)"
)

// Points per factor follow WHO antenatal cutoffs: one point at the watch
// threshold, two at the referral threshold, three at the danger threshold.
const (
	basicMaxPoints = 8  // pressure (3+3) + bmi (2)
	fullMaxPoints  = 14 // basic + sugar (3) + hemoglobin (3)
)

// Class centers on the normalized 0..1 score. A score lands on the level
// whose center is nearest; the gaps between centers set the class widths.
const (
	centerLow      = 0.0
	centerModerate = 0.45
	centerHigh     = 0.9
)

var errBadMeasurements = errors.New("height and weight must be positive")

type scoredResult struct {
	RiskLevel    string
	Confidence   float64
	ProbLow      float64
	ProbModerate float64
	ProbHigh     float64
	BMI          float64
	ModelUsed    string
	LabAvailable bool
}

// scoreAssessment classifies one measurement set. With lab values the full
// five-feature model runs, otherwise the three-feature basic model; both
// report class probabilities that sum to 100 and a confidence equal to the
// winning probability.
func scoreAssessment(req bridge.AssessRequest) (scoredResult, error) {
	if req.Height <= 0 || req.Weight <= 0 {
		return scoredResult{}, errBadMeasurements
	}
	heightM := req.Height / 100
	bmi := req.Weight / (heightM * heightM)

	points := stepPoints(req.Systolic, 130, 140, 160)
	points += stepPoints(req.Diastolic, 85, 90, 110)
	switch {
	case bmi < 17 || bmi >= 30:
		points += 2
	case bmi < 18.5 || bmi >= 25:
		points++
	}

	model := modelBasic
	max := float64(basicMaxPoints)
	if req.LabAvailable {
		model = modelFull
		max = fullMaxPoints
		points += stepPoints(req.BloodSugar, 7.8, 11.1, 13.9)
		points += stepPoints(-req.Hemoglobin, -11, -9, -7)
	}

	score := float64(points) / max

	// Class weight falls off with distance from the center; the offset
	// keeps an exact hit finite.
	wLow := 1 / (0.05 + math.Abs(score-centerLow))
	wModerate := 1 / (0.05 + math.Abs(score-centerModerate))
	wHigh := 1 / (0.05 + math.Abs(score-centerHigh))
	sum := wLow + wModerate + wHigh

	res := scoredResult{
		ProbLow:      round1(wLow / sum * 100),
		ProbModerate: round1(wModerate / sum * 100),
		ProbHigh:     round1(wHigh / sum * 100),
		BMI:          round1(bmi),
		ModelUsed:    model,
		LabAvailable: req.LabAvailable,
	}
	switch {
	case wLow >= wModerate && wLow >= wHigh:
		res.RiskLevel = "Low"
		res.Confidence = res.ProbLow
	case wModerate >= wHigh:
		res.RiskLevel = "Moderate"
		res.Confidence = res.ProbModerate
	default:
		res.RiskLevel = "High"
		res.Confidence = res.ProbHigh
	}
	return res, nil
}

// stepPoints grades a reading against three ascending thresholds. Negate
// the reading and the thresholds to grade a too-low value.
func stepPoints(v, mild, elevated, severe float64) int {
	switch {
	case v >= severe:
		return 3
	case v >= elevated:
		return 2
	case v >= mild:
		return 1
	}
	return 0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
