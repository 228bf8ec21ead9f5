package pageblade

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid pageblade configuration")
	// ErrEmptyPath indicates a request was dispatched without a resource path
	ErrEmptyPath = errors.New("request path is empty")
)

// Error is the single error type returned by Client operations.
//
// Code is the HTTP status of the response, or 0 when the request failed
// before any response was received. Message is the "message" field of the
// response body and is empty when the body carried none. Err holds the
// underlying cause for failures that did not come from the server.
type Error struct {
	Code    int
	Message string
	Body    []byte
	Err     error

	retryAfter time.Duration
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("pageblade")
	if e.Code != 0 {
		fmt.Fprintf(&sb, ": status %d", e.Code)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	if e.Code == 0 && e.Message == "" && e.Err == nil {
		sb.WriteString(": request failed")
	}
	return sb.String()
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// HasResponse reports whether the server answered at all
func (e *Error) HasResponse() bool {
	return e.Code != 0
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.Code == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// IsRateLimited checks if the error is a 429 that outlived the retry budget
func (e *Error) IsRateLimited() bool {
	return e.Code == http.StatusTooManyRequests
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// newResponseError builds an Error for a non-2xx response
func newResponseError(status int, body []byte) *Error {
	return &Error{
		Code:    status,
		Message: extractMessage(body),
		Body:    body,
	}
}

// extractMessage reads the "message" field of a JSON error body. Validation
// failures report it as a list of strings, which are joined.
func extractMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Message) == 0 {
		return ""
	}

	var msg string
	if err := json.Unmarshal(payload.Message, &msg); err == nil {
		return msg
	}

	var msgs []string
	if err := json.Unmarshal(payload.Message, &msgs); err == nil {
		return strings.Join(msgs, "; ")
	}

	return ""
}
