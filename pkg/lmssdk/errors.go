package lmssdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNoCredential indicates no stored credential is available.
	ErrNoCredential = errors.New("lmssdk: no credential")

	// ErrAuthExpired indicates a request still received 401 after the
	// post-refresh retry. The caller should force a fresh sign-in.
	ErrAuthExpired = errors.New("lmssdk: authentication expired")

	// ErrRefreshFailed indicates the refresh endpoint itself failed. The
	// stored credential has been cleared.
	ErrRefreshFailed = errors.New("lmssdk: token refresh failed")
)

// APIError represents an error response from the LMS backend.
// It implements the error interface and carries the HTTP status alongside
// the backend's error payload.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	// Code is a short machine-readable code when the backend provides one
	// (validation responses carry their "type" field here)
	Code string `json:"code,omitempty"`

	// Message is the human-readable error description
	Message string `json:"error"`

	// Fields contains field-specific validation errors, when present
	Fields map[string][]string `json:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is a backend 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsAuthExpired reports whether err is a terminal authentication failure,
// either the post-retry 401 or a failed refresh cycle.
func IsAuthExpired(err error) bool {
	return errors.Is(err, ErrAuthExpired) || errors.Is(err, ErrRefreshFailed)
}

// parseErrorResponse turns a non-2xx response body into a typed *APIError.
// The backend uses two shapes: a flat {"error": "..."} object and an
// ASP.NET-style validation problem {"type", "title", "status", "errors"}.
func parseErrorResponse(resp *http.Response, body []byte) error {
	// Flat error object, e.g. {"error": "Username already taken"}
	var flat struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    flat.Error,
		}
	}

	// Validation problem details
	var problem struct {
		Type   string              `json:"type"`
		Title  string              `json:"title"`
		Status int                 `json:"status"`
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &problem); err == nil && problem.Title != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       problem.Type,
			Message:    problem.Title,
			Fields:     problem.Errors,
		}
	}

	// Fallback: generic error from the status line, trimmed body as detail
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, msg),
	}
}
