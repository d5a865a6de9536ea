package services_test

import (
	"errors"
	"strings"
	"testing"

	"alcfg/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrOutput, "voice", "write", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrOutput) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"voice", "write", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutDetail(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrOutput) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "stage failure") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFailureStatusMapping(t *testing.T) {
	missing := services.Wrap(services.ErrMissingInput, "story", "load", "story.json not found", nil)
	if status := services.FailureStatus(missing); status != services.StatusSkipped {
		t.Fatalf("expected skipped for missing input, got %s", status)
	}

	empty := services.Wrap(services.ErrMalformedInput, "combined", "load", "ships table empty", nil)
	if status := services.FailureStatus(empty); status != services.StatusSkipped {
		t.Fatalf("expected skipped for malformed input, got %s", status)
	}

	panicErr := services.Wrap(services.ErrStagePanic, "aux", "", "boom", nil)
	if status := services.FailureStatus(panicErr); status != services.StatusFailed {
		t.Fatalf("expected failed for panic, got %s", status)
	}

	if status := services.FailureStatus(nil); status != services.StatusOK {
		t.Fatalf("expected ok for nil error, got %s", status)
	}
}
