package errors

import (
	"context"
	"fmt"
	"testing"
)

func TestErrValidationError(t *testing.T) {
	err := &ErrValidation{Field: "start_date", Message: "must not be after end_date"}
	if got, want := err.Error(), "start_date: must not be after end_date"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}

func TestErrNotFoundError(t *testing.T) {
	err := &ErrNotFound{Resource: "customer", ID: "abc"}
	if got, want := err.Error(), "customer abc not found"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}

func TestProviderErrorUnwrapAndClassify(t *testing.T) {
	base := &ProviderError{Ticker: "AAPL", Kind: ProviderTimeout, Err: context.DeadlineExceeded}
	wrapped := fmt.Errorf("ingest AAPL: %w", base)

	if !IsProvider(wrapped) {
		t.Fatal("expected wrapped provider error to be detected")
	}
	if IsNotFound(wrapped) || IsValidation(wrapped) {
		t.Fatal("provider error must not classify as not-found or validation")
	}
	if got, want := base.Error(), "provider error for AAPL (timeout): context deadline exceeded"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}

	withStatus := &ProviderError{Ticker: "X", Kind: ProviderRateLimited, StatusCode: 429}
	if got, want := withStatus.Error(), "provider error for X (rate_limited) status 429"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}
