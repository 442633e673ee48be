package backend

import (
	"errors"
	"fmt"
	"net/http"

	"backoffice/pkg/platform/sentinel"
)

// ErrCircuitOpen is returned without calling the backend while the breaker is open.
var ErrCircuitOpen = errors.New("backend circuit open")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
	Method  string
	Path    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// Unwrap maps the status onto the matching sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return sentinel.ErrNotFound
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return sentinel.ErrUnauthorized
	case e.Status == http.StatusConflict:
		return sentinel.ErrConflict
	case e.Status >= http.StatusInternalServerError:
		return sentinel.ErrUnavailable
	default:
		return nil
	}
}

// TransportError is a failure to get any HTTP answer (DNS, refused, timeout).
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{sentinel.ErrUnavailable, e.Err}
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Message returns the text shown to console users for err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
