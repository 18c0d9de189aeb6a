package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// StatusError is a non-2xx reply from the model endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm endpoint status %d: %s", e.Code, e.Body)
}

// FailureKind classifies an extraction error into the short tag recorded in
// the page's error status, e.g. "llm_error_v2:timeout". The kinds are a
// stable vocabulary for operators deciding what to re-enqueue.
func FailureKind(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("http_%d", se.Code)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "timeout"
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	if errors.Is(err, ErrNoJSON) {
		return "nojson"
	}
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	if errors.As(err, &syn) || errors.As(err, &typ) {
		return "badjson"
	}
	return "call_failed"
}
