package workflow

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

var fallbackPattern = regexp.MustCompile(`^PAT-\d+$`)

func highResult() *AssessmentResult {
	return &AssessmentResult{
		RiskLevel:     RiskHigh,
		Confidence:    92,
		Probabilities: Probabilities{Low: 3, Moderate: 12, High: 85},
		BMI:           23.4,
		ModelUsed:     "Full Model (5 features)",
		LabAvailable:  true,
	}
}

func TestNeedsGeneratedID(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "   ", "auto", "AUTO", " Auto "} {
		require.True(t, NeedsGeneratedID(s), "%q should need generation", s)
	}
	for _, s := range []string{"PT-0042", "auto2", "x"} {
		require.False(t, NeedsGeneratedID(s), "%q should be kept", s)
	}
}

func TestFallbackPatientIDPattern(t *testing.T) {
	t.Parallel()

	id := FallbackPatientID(time.Unix(1755772800, 0))
	require.Equal(t, "PAT-1755772800", id)
	require.Regexp(t, fallbackPattern, id)
}

func TestResolveTypedIDIssuesNoCall(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{}
	id := ResolvePatientID(context.Background(), caller, "  PT-0042 ", zerolog.Nop())
	require.Equal(t, "PT-0042", id)
	require.Zero(t, caller.genIDCalls)
}

func TestResolveGeneratedIDUsedVerbatim(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{genID: func() ([]byte, error) {
		return []byte(`{"success":true,"patient_id":"PAT-20260821-7F3A"}`), nil
	}}
	id := ResolvePatientID(context.Background(), caller, "auto", zerolog.Nop())
	require.Equal(t, "PAT-20260821-7F3A", id)
	require.Equal(t, 1, caller.genIDCalls)
}

func TestResolveFallsBackOnGenerationFailure(t *testing.T) {
	t.Parallel()

	cases := map[string]func() ([]byte, error){
		"transport": func() ([]byte, error) { return nil, errors.New("refused") },
		"business":  func() ([]byte, error) { return []byte(`{"success":false,"error":"id pool empty"}`), nil },
		"empty id":  func() ([]byte, error) { return []byte(`{"success":true,"patient_id":""}`), nil },
		"garbage":   func() ([]byte, error) { return []byte(`!!`), nil },
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			caller := &fakeCaller{genID: gen}
			id := ResolvePatientID(context.Background(), caller, "", zerolog.Nop())
			require.Regexp(t, fallbackPattern, id)
		})
	}
}

func TestBuildRecordDefaultsIndependently(t *testing.T) {
	t.Parallel()

	form := FormData{
		HealthWorker: "  ",
		Age:          "thirty",
		Systolic:     "150",
		Diastolic:    "",
		BloodSugar:   "12.2",
		Hemoglobin:   "8.4",
		Weight:       "60",
		Height:       "160",
	}
	rec := BuildRecord("PT-1", form, *highResult())

	require.Equal(t, "PT-1", rec.PatientID)
	require.Equal(t, "N/A", rec.HealthWorker)
	require.Zero(t, rec.Age)
	require.Equal(t, 150.0, rec.Systolic)
	require.Zero(t, rec.Diastolic)
	require.Equal(t, 12.2, rec.BloodSugar)

	// scored fields come from the result, not the form
	require.Equal(t, 23.4, rec.BMI)
	require.Equal(t, "High", rec.RiskLevel)
	require.Equal(t, 92.0, rec.Confidence)
	require.Equal(t, "Full Model (5 features)", rec.ModelUsed)
	require.True(t, rec.LabAvailable)
}

func TestSavePreconditionWithoutResult(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{}
	_, err := Save(context.Background(), caller, FormData{}, nil, zerolog.Nop())
	require.ErrorIs(t, err, ErrNoAssessment)
	require.Zero(t, caller.genIDCalls)
}

func TestSaveSuccess(t *testing.T) {
	t.Parallel()

	var saved bridge.RecordRequest
	caller := &fakeCaller{
		genID: func() ([]byte, error) {
			return []byte(`{"success":true,"patient_id":"PAT-20260821-0001"}`), nil
		},
		save: func(req bridge.RecordRequest) ([]byte, error) {
			saved = req
			return []byte(`{"success":true,"message":"saved"}`), nil
		},
	}
	out, err := Save(context.Background(), caller, FormData{Age: "28"}, highResult(), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, "PAT-20260821-0001", out.PatientID)
	require.Equal(t, "saved", out.Message)
	require.Equal(t, "PAT-20260821-0001", saved.PatientID)
	require.Equal(t, 28.0, saved.Age)
}

func TestSaveUnderFallbackIDWhenGenerationFails(t *testing.T) {
	t.Parallel()

	var saved bridge.RecordRequest
	caller := &fakeCaller{
		genID: func() ([]byte, error) { return nil, errors.New("refused") },
		save: func(req bridge.RecordRequest) ([]byte, error) {
			saved = req
			return []byte(`{"success":true,"message":"saved"}`), nil
		},
	}
	out, err := Save(context.Background(), caller, FormData{}, highResult(), zerolog.Nop())
	require.NoError(t, err)
	require.Regexp(t, fallbackPattern, out.PatientID)
	require.Regexp(t, fallbackPattern, saved.PatientID)
}

func TestSaveBusinessErrorVerbatim(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{save: func(bridge.RecordRequest) ([]byte, error) {
		return []byte(`{"success":false,"error":"disk full"}`), nil
	}}
	_, err := Save(context.Background(), caller, FormData{PatientID: "PT-1"}, highResult(), zerolog.Nop())
	var berr *BusinessError
	require.ErrorAs(t, err, &berr)
	require.Equal(t, "disk full", berr.Message)
}

func TestSaveContractFailureIsDistinct(t *testing.T) {
	t.Parallel()

	for name, payload := range map[string]string{
		"empty":          "",
		"garbage":        "oops",
		"silent failure": `{"success":false}`,
	} {
		t.Run(name, func(t *testing.T) {
			caller := &fakeCaller{save: func(bridge.RecordRequest) ([]byte, error) {
				return []byte(payload), nil
			}}
			_, err := Save(context.Background(), caller, FormData{PatientID: "PT-1"}, highResult(), zerolog.Nop())
			var cerr *ContractError
			require.ErrorAs(t, err, &cerr)
			var berr *BusinessError
			require.False(t, errors.As(err, &berr), "contract failures must not read as business errors")
		})
	}
}

func TestReportPreconditionAndSuccess(t *testing.T) {
	t.Parallel()

	_, err := Report(context.Background(), &fakeCaller{}, FormData{}, nil, zerolog.Nop())
	require.ErrorIs(t, err, ErrNoAssessment)

	var sent bridge.RecordRequest
	caller := &fakeCaller{report: func(req bridge.RecordRequest) ([]byte, error) {
		sent = req
		return []byte(`{"success":true,"filename":"report_PT-1_20260821.pdf"}`), nil
	}}
	name, err := Report(context.Background(), caller, FormData{PatientID: "PT-1"}, highResult(), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, "report_PT-1_20260821.pdf", name)
	require.Equal(t, "PT-1", sent.PatientID)
	require.Zero(t, caller.genIDCalls, "reporting must not mint ids")
}

func TestReportBlankIDStaysLocal(t *testing.T) {
	t.Parallel()

	var sent bridge.RecordRequest
	caller := &fakeCaller{report: func(req bridge.RecordRequest) ([]byte, error) {
		sent = req
		return []byte(`{"success":true,"filename":"report_NA.pdf"}`), nil
	}}
	_, err := Report(context.Background(), caller, FormData{PatientID: " auto "}, highResult(), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, "N/A", sent.PatientID)
	require.Zero(t, caller.genIDCalls)
}
