package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

// placeholderID is the ghost text of the patient-id field. Leaving it, or
// typing it back in, counts as "no id entered".
const placeholderID = "auto"

// NeedsGeneratedID reports whether typed counts as unset, so an id has to
// be generated before saving.
func NeedsGeneratedID(typed string) bool {
	t := strings.TrimSpace(typed)
	return t == "" || strings.EqualFold(t, placeholderID)
}

// FallbackPatientID is the local pattern used when generation fails. The
// record still saves; only the id provenance changes.
func FallbackPatientID(now time.Time) string {
	return fmt.Sprintf("PAT-%d", now.Unix())
}

type idPayload struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	PatientID string `json:"patient_id"`
}

// ResolvePatientID applies the identifier rules: a typed id wins untouched;
// otherwise one generate_patient_id call whose id is used verbatim; any
// failure there falls back to the local pattern, logged and not fatal.
func ResolvePatientID(ctx context.Context, caller bridge.Caller, typed string, logger zerolog.Logger) string {
	if !NeedsGeneratedID(typed) {
		return strings.TrimSpace(typed)
	}
	id, err := generatePatientID(ctx, caller)
	if err != nil {
		fallback := FallbackPatientID(time.Now())
		logger.Warn().Err(err).Str("fallback_id", fallback).Msg("patient id generation failed, using local id")
		return fallback
	}
	return id
}

func generatePatientID(ctx context.Context, caller bridge.Caller) (string, error) {
	payload, err := caller.GeneratePatientID(ctx)
	if err != nil {
		return "", err
	}
	var resp idPayload
	if err := parsePayload(bridge.CallGeneratePatientID, payload, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", &BusinessError{Call: bridge.CallGeneratePatientID, Message: resp.Error}
	}
	if strings.TrimSpace(resp.PatientID) == "" {
		return "", &ContractError{Call: bridge.CallGeneratePatientID, Reason: "missing patient_id", Excerpt: excerpt(payload)}
	}
	return resp.PatientID, nil
}

// BuildRecord merges identity, form fields and the scored result into the
// wire record. Form numerics default independently to zero and a blank
// health worker becomes N/A; the clinical outcome fields always come from
// the result, never from re-reading the form.
func BuildRecord(patientID string, form FormData, result AssessmentResult) bridge.RecordRequest {
	worker := strings.TrimSpace(form.HealthWorker)
	if worker == "" {
		worker = "N/A"
	}
	return bridge.RecordRequest{
		PatientID:    patientID,
		HealthWorker: worker,
		Age:          num(form.Age),
		Systolic:     num(form.Systolic),
		Diastolic:    num(form.Diastolic),
		BloodSugar:   num(form.BloodSugar),
		Hemoglobin:   num(form.Hemoglobin),
		BMI:          result.BMI,
		RiskLevel:    string(result.RiskLevel),
		Confidence:   result.Confidence,
		ModelUsed:    result.ModelUsed,
		LabAvailable: result.LabAvailable,
	}
}

type savePayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SaveOutcome reports a stored record.
type SaveOutcome struct {
	PatientID string
	Message   string
}

// Save persists the current result under a resolved patient id.
func Save(ctx context.Context, caller bridge.Caller, form FormData, current *AssessmentResult, logger zerolog.Logger) (SaveOutcome, error) {
	if current == nil {
		return SaveOutcome{}, ErrNoAssessment
	}
	if caller == nil {
		return SaveOutcome{}, ErrBridgeUnavailable
	}
	id := ResolvePatientID(ctx, caller, form.PatientID, logger)
	payload, err := caller.SaveAssessment(ctx, BuildRecord(id, form, *current))
	if err != nil {
		return SaveOutcome{}, err
	}
	var resp savePayload
	if err := parsePayload(bridge.CallSaveAssessment, payload, &resp); err != nil {
		logContract(logger, err)
		return SaveOutcome{}, err
	}
	if resp.Error != "" {
		return SaveOutcome{}, &BusinessError{Call: bridge.CallSaveAssessment, Message: resp.Error}
	}
	if !resp.Success {
		cerr := &ContractError{Call: bridge.CallSaveAssessment, Reason: "success=false without error", Excerpt: excerpt(payload)}
		logContract(logger, cerr)
		return SaveOutcome{}, cerr
	}
	return SaveOutcome{PatientID: id, Message: resp.Message}, nil
}

func logContract(logger zerolog.Logger, err error) {
	var cerr *ContractError
	if errors.As(err, &cerr) {
		logger.Error().
			Str("call", cerr.Call).
			Str("reason", cerr.Reason).
			Str("payload", cerr.Excerpt).
			Msg("bridge contract violation")
	}
}
