package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

func healthyBasic() bridge.AssessRequest {
	return bridge.AssessRequest{
		Age:      28,
		Weight:   60,
		Height:   160,
		Systolic: 120, Diastolic: 80,
	}
}

func TestScoreHealthyBasic(t *testing.T) {
	t.Parallel()

	res, err := scoreAssessment(healthyBasic())
	require.NoError(t, err)

	require.Equal(t, "Low", res.RiskLevel)
	require.Equal(t, modelBasic, res.ModelUsed)
	require.False(t, res.LabAvailable)
	require.InDelta(t, 23.4, res.BMI, 0.001)
	require.Greater(t, res.Confidence, 80.0)
}

func TestScoreSevereFull(t *testing.T) {
	t.Parallel()

	res, err := scoreAssessment(bridge.AssessRequest{
		Age:    41,
		Weight: 90, Height: 160,
		Systolic: 170, Diastolic: 115,
		BloodSugar: 15, Hemoglobin: 6.5,
		LabAvailable: true,
	})
	require.NoError(t, err)

	require.Equal(t, "High", res.RiskLevel)
	require.Equal(t, modelFull, res.ModelUsed)
	require.True(t, res.LabAvailable)
	require.Greater(t, res.ProbHigh, res.ProbModerate)
	require.Greater(t, res.ProbModerate, res.ProbLow)
}

func TestScoreElevatedPressureIsModerate(t *testing.T) {
	t.Parallel()

	req := healthyBasic()
	req.Systolic = 145
	res, err := scoreAssessment(req)
	require.NoError(t, err)
	require.Equal(t, "Moderate", res.RiskLevel)
}

func TestModelSelection(t *testing.T) {
	t.Parallel()

	req := healthyBasic()
	req.BloodSugar = 6.5
	req.Hemoglobin = 12

	basic, err := scoreAssessment(req)
	require.NoError(t, err)
	require.Equal(t, modelBasic, basic.ModelUsed)

	req.LabAvailable = true
	full, err := scoreAssessment(req)
	require.NoError(t, err)
	require.Equal(t, modelFull, full.ModelUsed)
}

func TestScoreRejectsNonPositiveMeasurements(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		mut  func(*bridge.AssessRequest)
	}{
		{"zero height", func(r *bridge.AssessRequest) { r.Height = 0 }},
		{"zero weight", func(r *bridge.AssessRequest) { r.Weight = 0 }},
		{"negative height", func(r *bridge.AssessRequest) { r.Height = -160 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := healthyBasic()
			tc.mut(&req)
			_, err := scoreAssessment(req)
			require.ErrorIs(t, err, errBadMeasurements)
		})
	}
}

func TestProbabilitiesSumToHundred(t *testing.T) {
	t.Parallel()

	cases := []bridge.AssessRequest{
		healthyBasic(),
		{Weight: 45, Height: 160, Systolic: 135, Diastolic: 88},
		{Weight: 90, Height: 160, Systolic: 170, Diastolic: 115, BloodSugar: 15, Hemoglobin: 6.5, LabAvailable: true},
		{Weight: 70, Height: 165, Systolic: 142, Diastolic: 92, BloodSugar: 12, Hemoglobin: 10, LabAvailable: true},
	}
	for _, req := range cases {
		res, err := scoreAssessment(req)
		require.NoError(t, err)

		sum := res.ProbLow + res.ProbModerate + res.ProbHigh
		require.InDelta(t, 100, sum, 0.2, "probabilities for %+v", req)

		max := res.ProbLow
		if res.ProbModerate > max {
			max = res.ProbModerate
		}
		if res.ProbHigh > max {
			max = res.ProbHigh
		}
		require.Equal(t, max, res.Confidence, "confidence for %+v", req)
	}
}

func TestWorsePressureNeverLowersRisk(t *testing.T) {
	t.Parallel()

	rank := map[string]int{"Low": 0, "Moderate": 1, "High": 2}
	prev := -1
	for _, systolic := range []float64{110, 125, 135, 145, 155, 165, 180} {
		req := healthyBasic()
		req.Systolic = systolic
		res, err := scoreAssessment(req)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rank[res.RiskLevel], prev, "systolic %.0f", systolic)
		prev = rank[res.RiskLevel]
	}
}
