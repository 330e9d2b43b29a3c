package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrUnauthorized is returned for HTTP 401 responses. Callers distinguish it
// from generic failures because the correct recovery is re-authentication,
// not a retry.
var ErrUnauthorized = errors.New("authentication required")

// StatusError carries a non-2xx backend response. Detail is the parsed
// message from the conventional {"detail": "..."} error body when present.
type StatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Detail     string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "api status error"
	}
	if strings.TrimSpace(e.Detail) == "" {
		return fmt.Sprintf("%s status: %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Operation, strings.TrimSpace(e.Detail))
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// statusError translates a non-2xx response into a typed error. The body is
// parsed as {"detail": "..."}; anything else falls back to the raw text
// appended to the status line.
func statusError(operation string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var parsed errorBody
	detail := ""
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Detail != "" {
		detail = parsed.Detail
	} else if text := strings.TrimSpace(string(raw)); text != "" {
		detail = fmt.Sprintf("%s: %s", resp.Status, text)
	}

	statusErr := &StatusError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Detail:     detail,
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", operation, ErrUnauthorized)
	}
	return statusErr
}

// IsUnauthorized reports whether err stems from an HTTP 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
