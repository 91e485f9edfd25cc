package tidepool

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel error kinds. Every error returned by this package wraps exactly
// one of them, so callers can branch with errors.Is without string matching.
var (
	// ErrConfiguration is returned when the client itself is misconfigured,
	// e.g. a namespace-scoped call with no explicit namespace and no default.
	ErrConfiguration = errors.New("tidepool: configuration error")

	// ErrValidation is returned for malformed request parameters caught
	// before any network call, and for HTTP 400 responses.
	ErrValidation = errors.New("tidepool: validation error")

	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("tidepool: not found")

	// ErrAuthorization is returned for HTTP 401 and 403 responses.
	ErrAuthorization = errors.New("tidepool: authorization error")

	// ErrConflict is returned for HTTP 409 responses.
	ErrConflict = errors.New("tidepool: conflict")

	// ErrService is returned for 5xx responses, for unexpected status codes,
	// and for error responses whose body could not be decoded.
	ErrService = errors.New("tidepool: service error")

	// ErrTransport is returned for network-level failures (connection
	// refused, timeouts) that never produced an HTTP status.
	ErrTransport = errors.New("tidepool: transport error")
)

// APIError is an error surfaced by one of the backend services, carrying the
// server-provided message verbatim and the HTTP status code it arrived with.
type APIError struct {
	kind       error
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.kind.Error(), e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.kind }

// StatusCode extracts the HTTP status code carried by err, or 0 when err
// did not originate from an HTTP response.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsConfiguration reports whether err is a client configuration error.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }

// IsValidation reports whether err is a validation error (local or 400).
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a 404 error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAuthorization reports whether err is a 401/403 error.
func IsAuthorization(err error) bool { return errors.Is(err, ErrAuthorization) }

// IsConflict reports whether err is a 409 error.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsService reports whether err is a server-side (5xx or malformed) error.
func IsService(err error) bool { return errors.Is(err, ErrService) }

// IsTransport reports whether err is a network-level error.
func IsTransport(err error) bool { return errors.Is(err, ErrTransport) }

func configurationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func transportError(err error) error {
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

// extractErrorMessage pulls a human-readable message out of an error response
// body. The services normally answer {"error": "<message>"}; some older
// builds used {"message": ...}. A JSON body missing both keys is reported as
// malformed, a plain-text body is used as-is, and an empty body falls back to
// a generic status description.
func extractErrorMessage(status int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Sprintf("HTTP %d", status)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err == nil {
		for _, key := range []string{"error", "message"} {
			if msg, ok := decoded[key].(string); ok && strings.TrimSpace(msg) != "" {
				return msg
			}
		}
		return "malformed error response"
	}
	if json.Valid(body) {
		return "malformed error response"
	}
	return text
}

// mapStatusError converts a non-2xx HTTP response into a typed error. It is
// a pure function of the status code and body; it never retries and never
// consults client state.
func mapStatusError(status int, body []byte) error {
	message := extractErrorMessage(status, body)

	kind := ErrService
	switch {
	case status == http.StatusBadRequest || status == http.StatusRequestEntityTooLarge:
		kind = ErrValidation
	case status == http.StatusNotFound:
		kind = ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrAuthorization
	case status == http.StatusConflict:
		kind = ErrConflict
	}

	return &APIError{kind: kind, Message: message, StatusCode: status}
}
