package workflow

import (
	"errors"
	"fmt"
)

// ErrBridgeUnavailable means the backend connection never came up; the
// workflows refuse to start a call instead of crashing mid-flight.
var ErrBridgeUnavailable = errors.New("bridge unavailable")

// ErrNoAssessment is the precondition failure for save and report: there is
// no current result, so no call is issued.
var ErrNoAssessment = errors.New("no current assessment")

// BusinessError is a failure the backend declared inside its payload. The
// message is shown to the user verbatim.
type BusinessError struct {
	Call    string
	Message string
}

func (e *BusinessError) Error() string { return e.Message }

// ContractError means the call completed but the payload was empty or not
// parseable: the wire contract itself is broken. It carries diagnostics for
// the log and is surfaced with harder wording than a business failure.
type ContractError struct {
	Call    string
	Reason  string
	Excerpt string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Call, e.Reason)
}

const excerptLimit = 120

func excerpt(payload []byte) string {
	if len(payload) > excerptLimit {
		payload = payload[:excerptLimit]
	}
	return string(payload)
}
