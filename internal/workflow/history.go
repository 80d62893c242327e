package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

// HistoryRecord is one stored assessment as the bridge returns it. Keys
// and string values match the store's export columns; the client renders
// fields as received and only parses the timestamp for locale display.
type HistoryRecord struct {
	Timestamp    string `json:"Timestamp"`
	PatientID    string `json:"Patient_ID"`
	Age          string `json:"Age"`
	BMI          string `json:"BMI"`
	Systolic     string `json:"SystolicBP"`
	Diastolic    string `json:"DiastolicBP"`
	BloodSugar   string `json:"Blood_Sugar"`
	Hemoglobin   string `json:"Hemoglobin"`
	RiskLevel    string `json:"Risk_Level"`
	Confidence   string `json:"Confidence"`
	ModelUsed    string `json:"Model_Used"`
	LabAvailable string `json:"Lab_Available"`
	HealthWorker string `json:"Health_Worker"`
}

const historyTimeLayout = "2006-01-02 15:04:05"

// Time parses the record timestamp; ok is false for malformed rows, which
// then render the raw string.
func (r HistoryRecord) Time() (time.Time, bool) {
	t, err := time.Parse(historyTimeLayout, r.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// History fetches every stored assessment in the order the bridge returns
// them. The client never sorts or filters; ordering belongs to the store.
func History(ctx context.Context, caller bridge.Caller) ([]HistoryRecord, error) {
	if caller == nil {
		return nil, ErrBridgeUnavailable
	}
	payload, err := caller.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	body := bytes.TrimSpace(payload)
	if len(body) == 0 {
		return nil, &ContractError{Call: bridge.CallLoadHistory, Reason: "empty payload"}
	}
	if body[0] == '{' {
		var env errEnvelope
		if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
			return nil, &BusinessError{Call: bridge.CallLoadHistory, Message: env.Error}
		}
		return nil, &ContractError{Call: bridge.CallLoadHistory, Reason: "expected array", Excerpt: excerpt(body)}
	}
	var records []HistoryRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &ContractError{Call: bridge.CallLoadHistory, Reason: "unparseable payload: " + err.Error(), Excerpt: excerpt(body)}
	}
	return records, nil
}
