package tidepool

import (
	"errors"
	"testing"
)

func TestMapStatusError_Kinds(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{400, IsValidation, "validation"},
		{404, IsNotFound, "not found"},
		{401, IsAuthorization, "authorization"},
		{403, IsAuthorization, "authorization"},
		{409, IsConflict, "conflict"},
		{413, IsValidation, "validation"},
		{500, IsService, "service"},
		{503, IsService, "service"},
		{418, IsService, "service"},
	}

	for _, tc := range cases {
		err := mapStatusError(tc.status, []byte(`{"error": "boom"}`))
		if !tc.check(err) {
			t.Errorf("status %d: expected %s error, got %v", tc.status, tc.name, err)
		}
		if StatusCode(err) != tc.status {
			t.Errorf("status %d: expected status code to round-trip, got %d", tc.status, StatusCode(err))
		}
	}
}

func TestMapStatusError_MessageVerbatim(t *testing.T) {
	err := mapStatusError(404, []byte(`{"error": "namespace not found"}`))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "namespace not found" {
		t.Errorf("expected verbatim message, got %q", apiErr.Message)
	}
}

func TestMapStatusError_MessageKeyFallback(t *testing.T) {
	err := mapStatusError(400, []byte(`{"message": "bad vector"}`))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "bad vector" {
		t.Errorf("expected message key fallback, got %q", apiErr.Message)
	}
}

func TestExtractErrorMessage_EmptyBody(t *testing.T) {
	msg := extractErrorMessage(502, nil)
	if msg != "HTTP 502" {
		t.Errorf("expected HTTP 502, got %q", msg)
	}
}

func TestExtractErrorMessage_PlainText(t *testing.T) {
	msg := extractErrorMessage(500, []byte("upstream exploded"))
	if msg != "upstream exploded" {
		t.Errorf("expected plain text passthrough, got %q", msg)
	}
}

func TestExtractErrorMessage_JSONWithoutKnownKeys(t *testing.T) {
	msg := extractErrorMessage(500, []byte(`{"detail": "nope"}`))
	if msg != "malformed error response" {
		t.Errorf("expected malformed error response, got %q", msg)
	}
}

func TestExtractErrorMessage_JSONNonObject(t *testing.T) {
	msg := extractErrorMessage(500, []byte(`[1, 2, 3]`))
	if msg != "malformed error response" {
		t.Errorf("expected malformed error response, got %q", msg)
	}
}

func TestStatusCode_NonHTTPError(t *testing.T) {
	if code := StatusCode(validationError("local")); code != 0 {
		t.Errorf("expected 0 for local error, got %d", code)
	}
	if code := StatusCode(nil); code != 0 {
		t.Errorf("expected 0 for nil, got %d", code)
	}
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	err := mapStatusError(404, []byte(`{"error": "missing"}`))
	if IsValidation(err) || IsService(err) || IsAuthorization(err) || IsConflict(err) || IsTransport(err) {
		t.Errorf("404 error matched more than one kind: %v", err)
	}
	if !IsNotFound(err) {
		t.Errorf("404 error did not match not found: %v", err)
	}
}
