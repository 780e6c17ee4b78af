package errors

import (
	stderrors "errors"
	"fmt"
)

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrNotFound is returned when a referenced entity (customer, stock) does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ProviderErrorKind classifies why a market-data fetch failed.
type ProviderErrorKind string

const (
	ProviderTransport    ProviderErrorKind = "transport"
	ProviderTimeout      ProviderErrorKind = "timeout"
	ProviderRateLimited  ProviderErrorKind = "rate_limited"
	ProviderUnauthorized ProviderErrorKind = "unauthorized"
	ProviderUpstream     ProviderErrorKind = "upstream"
	ProviderMalformed    ProviderErrorKind = "malformed"
)

// ProviderError means the provider could not be reached or answered with
// something unusable. An empty result set is never a ProviderError.
type ProviderError struct {
	Ticker     string
	Kind       ProviderErrorKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("provider error for %s (%s)", e.Ticker, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target *ErrValidation
	return stderrors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *ErrNotFound
	return stderrors.As(err, &target)
}

func IsProvider(err error) bool {
	var target *ProviderError
	return stderrors.As(err, &target)
}
