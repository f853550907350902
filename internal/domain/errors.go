package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the planner. Callers match these with errors.Is to map
// failures onto their own error surface.
var (
	// ErrInvalidRequest indicates the search criteria failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownProvider indicates the configured flight provider is not registered.
	ErrUnknownProvider = errors.New("unknown flight provider")

	// ErrProviderUnavailable indicates every route fetch failed, so no flight
	// table could be built at all.
	ErrProviderUnavailable = errors.New("flight provider unavailable")
)

// ProviderError wraps a failure from the flight provider with route context.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Route is the city pair being fetched when the failure occurred
	Route Route

	// Err is the underlying error
	Err error

	// Retryable indicates whether the fetch may succeed on retry
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: route %s: %v", e.Provider, e.Route, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, route Route, err error) *ProviderError {
	return &ProviderError{Provider: provider, Route: route, Err: err}
}

// NewRetryableProviderError creates a retryable provider error.
func NewRetryableProviderError(provider string, route Route, err error) *ProviderError {
	return &ProviderError{Provider: provider, Route: route, Err: err, Retryable: true}
}

// IsRetryable reports whether err is a provider error marked retryable.
func IsRetryable(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Retryable
}
