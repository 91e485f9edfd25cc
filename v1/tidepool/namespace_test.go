package tidepool

import "testing"

func TestResolveNamespace_ExplicitWins(t *testing.T) {
	ns, err := resolveNamespace("explicit", "default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ns != "explicit" {
		t.Errorf("expected explicit, got %q", ns)
	}
}

func TestResolveNamespace_FallsBackToDefault(t *testing.T) {
	ns, err := resolveNamespace("", "default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ns != "default" {
		t.Errorf("expected default, got %q", ns)
	}
}

func TestResolveNamespace_WhitespaceIsEmpty(t *testing.T) {
	ns, err := resolveNamespace("   ", "default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ns != "default" {
		t.Errorf("expected default, got %q", ns)
	}
}

func TestResolveNamespace_NeitherSet(t *testing.T) {
	_, err := resolveNamespace("", "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if IsValidation(err) {
		t.Fatal("missing namespace must not be a validation error")
	}
}
