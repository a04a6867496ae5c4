package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned when the backend rejects the bearer token
	// (missing, invalid or expired). Callers should send the operator back to login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when the requested id no longer exists on the backend.
	ErrNotFound = errors.New("requested record not found")

	// ErrValidationRejected is returned when the backend refuses the payload.
	ErrValidationRejected = errors.New("validation rejected by backend")

	// ErrNetworkFailure is returned when no response was received or the
	// backend itself failed (5xx).
	ErrNetworkFailure = errors.New("network failure")
)

// errorBody is the backend's JSON error envelope. Either field may be absent.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func (e errorBody) detail() string {
	switch {
	case e.Details != "":
		return e.Details
	case e.Error != "":
		return e.Error
	default:
		return e.Message
	}
}

// classifyStatus maps an HTTP error response onto one of the sentinel errors,
// keeping whatever detail the backend supplied.
func classifyStatus(status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	detail := eb.detail()
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %s", ErrValidationRejected, detail)
	default:
		return fmt.Errorf("%w: backend returned %d: %s", ErrNetworkFailure, status, detail)
	}
}
