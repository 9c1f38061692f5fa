package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnreachable marks transport-level failures: DNS errors, refused
// connections, timeouts. It is distinct from any application-level *Error so
// callers can tell "server said no" from "server never answered".
var ErrUnreachable = errors.New("cannot reach server")

// Error is an application-level failure reported by the backend. Message is
// user-facing; StatusCode and Detail let callers branch without re-parsing it.
type Error struct {
	StatusCode int
	Message    string
	Detail     any
}

func (e *Error) Error() string { return e.Message }

// IsAuthError reports whether e is a 401 or 403 — the class that forces a
// logout rather than an inline retry.
func (e *Error) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

var statusMessages = map[int]string{
	400: "invalid input",
	401: "authentication required",
	403: "forbidden",
	404: "not found",
	409: "duplicate resource",
	422: "validation failed",
	500: "server error",
}

func statusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("unexpected error (status %d)", code)
}

// errorBody is the shape of backend error payloads. Message may be a single
// string or an array of validation messages.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
	Details any             `json:"details"`
}

// newError builds an *Error from a non-2xx response body. An unparsable or
// empty body falls back to the status-specific message.
func newError(statusCode int, body []byte) *Error {
	apiErr := &Error{
		StatusCode: statusCode,
		Message:    statusMessage(statusCode),
	}

	if len(body) == 0 {
		return apiErr
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	if msg := decodeMessage(parsed.Message); msg != "" {
		apiErr.Message = msg
	} else if parsed.Error != "" {
		apiErr.Message = parsed.Error
	}
	apiErr.Detail = parsed.Details

	return apiErr
}

func decodeMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, "; ")
	}

	return ""
}
