package workflow

import (
	"context"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

// assessPayload mirrors the assess_risk response wire shape.
type assessPayload struct {
	Error         string        `json:"error"`
	RiskLevel     string        `json:"risk_level"`
	Confidence    float64       `json:"confidence"`
	Probabilities Probabilities `json:"probabilities"`
	BMI           float64       `json:"bmi"`
	ModelUsed     string        `json:"model_used"`
	LabAvailable  bool          `json:"lab_available"`
}

// Assess runs one scoring call and builds the result. A backend-declared
// error, a broken payload and a transport failure each come back as their
// own class; the caller shows all of them on the same error line.
func Assess(ctx context.Context, caller bridge.Caller, req bridge.AssessRequest) (AssessmentResult, error) {
	if caller == nil {
		return AssessmentResult{}, ErrBridgeUnavailable
	}
	payload, err := caller.AssessRisk(ctx, req)
	if err != nil {
		return AssessmentResult{}, err
	}
	var resp assessPayload
	if err := parsePayload(bridge.CallAssessRisk, payload, &resp); err != nil {
		return AssessmentResult{}, err
	}
	if resp.Error != "" {
		return AssessmentResult{}, &BusinessError{Call: bridge.CallAssessRisk, Message: resp.Error}
	}
	if resp.RiskLevel == "" {
		return AssessmentResult{}, &ContractError{Call: bridge.CallAssessRisk, Reason: "missing risk_level", Excerpt: excerpt(payload)}
	}
	return AssessmentResult{
		RiskLevel:     RiskLevel(resp.RiskLevel),
		Confidence:    resp.Confidence,
		Probabilities: resp.Probabilities,
		BMI:           resp.BMI,
		ModelUsed:     resp.ModelUsed,
		LabAvailable:  resp.LabAvailable,
	}, nil
}
