// Package bridge is the client side of the scoring service RPC contract.
// Every call returns the raw response payload; parsing and error
// classification stay in the workflow layer.
package bridge

import "context"

// RPC call names, shared with the daemon's route table.
const (
	CallAssessRisk        = "assess_risk"
	CallGeneratePatientID = "generate_patient_id"
	CallSaveAssessment    = "save_assessment"
	CallGeneratePDFReport = "generate_pdf_report"
	CallLoadHistory       = "load_history"
	CallDashboardStats    = "get_dashboard_stats"
)

// AssessRequest carries the seven measurements and the lab flag for one
// scoring call. Unset fields are sent as zero.
type AssessRequest struct {
	Age          float64 `json:"age"`
	Weight       float64 `json:"weight"`
	Height       float64 `json:"height"`
	Systolic     float64 `json:"systolic"`
	Diastolic    float64 `json:"diastolic"`
	BloodSugar   float64 `json:"blood_sugar"`
	Hemoglobin   float64 `json:"hemoglobin"`
	LabAvailable bool    `json:"lab_available"`
}

// RecordRequest is the merged record sent to save_assessment and
// generate_pdf_report: resolved patient identity plus the measurements and
// the scored result they belong to.
type RecordRequest struct {
	PatientID    string  `json:"patient_id"`
	HealthWorker string  `json:"health_worker"`
	Age          float64 `json:"age"`
	Systolic     float64 `json:"systolic"`
	Diastolic    float64 `json:"diastolic"`
	BloodSugar   float64 `json:"blood_sugar"`
	Hemoglobin   float64 `json:"hemoglobin"`
	BMI          float64 `json:"bmi"`
	RiskLevel    string  `json:"risk_level"`
	Confidence   float64 `json:"confidence"`
	ModelUsed    string  `json:"model_used"`
	LabAvailable bool    `json:"lab_available"`
}

// Caller issues the six bridge RPCs. Implementations must not retry;
// the workflows surface every failure exactly once.
type Caller interface {
	AssessRisk(ctx context.Context, req AssessRequest) ([]byte, error)
	GeneratePatientID(ctx context.Context) ([]byte, error)
	SaveAssessment(ctx context.Context, req RecordRequest) ([]byte, error)
	GeneratePDFReport(ctx context.Context, req RecordRequest) ([]byte, error)
	LoadHistory(ctx context.Context) ([]byte, error)
	DashboardStats(ctx context.Context) ([]byte, error)
	Ping(ctx context.Context) error
}
