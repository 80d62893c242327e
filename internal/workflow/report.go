package workflow

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

type reportPayload struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Filename string `json:"filename"`
}

// Report asks the bridge for a printable artifact of the current result and
// returns its filename. The record mirrors what save sends, except that a
// blank patient id stays N/A: reporting never mints identifiers.
func Report(ctx context.Context, caller bridge.Caller, form FormData, current *AssessmentResult, logger zerolog.Logger) (string, error) {
	if current == nil {
		return "", ErrNoAssessment
	}
	if caller == nil {
		return "", ErrBridgeUnavailable
	}
	id := strings.TrimSpace(form.PatientID)
	if NeedsGeneratedID(id) {
		id = "N/A"
	}
	payload, err := caller.GeneratePDFReport(ctx, BuildRecord(id, form, *current))
	if err != nil {
		return "", err
	}
	var resp reportPayload
	if err := parsePayload(bridge.CallGeneratePDFReport, payload, &resp); err != nil {
		logContract(logger, err)
		return "", err
	}
	if resp.Error != "" {
		return "", &BusinessError{Call: bridge.CallGeneratePDFReport, Message: resp.Error}
	}
	if resp.Filename == "" {
		cerr := &ContractError{Call: bridge.CallGeneratePDFReport, Reason: "missing filename", Excerpt: excerpt(payload)}
		logContract(logger, cerr)
		return "", cerr
	}
	return resp.Filename, nil
}
