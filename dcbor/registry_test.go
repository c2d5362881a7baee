package dcbor

import (
	"errors"
	"testing"
)

func TestTagRegistry(t *testing.T) {
	if err := RegisterTagName(7001, "widget"); err != nil {
		t.Fatalf("RegisterTagName: %v", err)
	}
	// Re-registering the same mapping is allowed.
	if err := RegisterTagName(7001, "widget"); err != nil {
		t.Fatalf("idempotent re-register: %v", err)
	}
	err := RegisterTagName(7001, "gadget")
	var ce ConflictingRegistrationError
	if !errors.As(err, &ce) {
		t.Fatalf("conflicting register: got %v", err)
	}
	if ce.Tag != 7001 || ce.Existing != "widget" || ce.Proposed != "gadget" {
		t.Fatalf("conflict detail: %+v", ce)
	}

	name, ok := LookupTagName(7001)
	if !ok || name != "widget" {
		t.Fatalf("LookupTagName = %q, %v", name, ok)
	}
	if _, ok := LookupTagName(7002); ok {
		t.Fatalf("unregistered tag resolved")
	}

	// Diagnostic consults the registry by default.
	v := mustTag(t, 7001, Null())
	if got := Diagnostic(v); got != "widget(null)" {
		t.Fatalf("Diagnostic = %q", got)
	}
}
