package inventory

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// TransportError wraps a network, DNS or TLS failure of a single request.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 512 {
		body = body[:512] + "..."
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, body)
}

// IsDuplicate reports whether the API rejected the request because a record
// with the same natural key already exists.
func (e *APIError) IsDuplicate() bool {
	if e.Status != http.StatusBadRequest && e.Status != http.StatusConflict {
		return false
	}
	return strings.Contains(strings.ToLower(e.Body), "already exists")
}

// IsDuplicate reports whether err is a duplicate-key *APIError.
func IsDuplicate(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsDuplicate()
}

// IsTransport reports whether err is a *TransportError.
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
