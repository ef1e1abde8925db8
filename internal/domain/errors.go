package domain

import "errors"

// Sentinel errors returned by the domain and use case layers.
// Callers match them with errors.Is after wrapping.
var (
	// ErrInvalidRequest indicates the caller's request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoProviders indicates no flight provider is configured.
	ErrNoProviders = errors.New("no flight providers configured")

	// ErrProviderUnavailable indicates the upstream flight provider could
	// not serve any part of the request.
	ErrProviderUnavailable = errors.New("flight provider unavailable")
)
