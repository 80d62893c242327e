package workflow

import (
	"bytes"
	"encoding/json"
)

// parsePayload decodes payload into out. Empty and unparseable bodies are
// contract failures, not business failures: the call went through but the
// response is unusable.
func parsePayload(call string, payload []byte, out any) error {
	body := bytes.TrimSpace(payload)
	if len(body) == 0 {
		return &ContractError{Call: call, Reason: "empty payload"}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ContractError{Call: call, Reason: "unparseable payload: " + err.Error(), Excerpt: excerpt(body)}
	}
	return nil
}

// errEnvelope is the failure shape shared by the list calls, which answer
// with a bare {"error": ...} object instead of an array when they fail.
type errEnvelope struct {
	Error string `json:"error"`
}
