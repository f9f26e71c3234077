package services

import "fmt"

// UnavailableError means the generation service could not be reached at all
// (refused, reset, DNS failure or timeout).
type UnavailableError struct{ Err error }

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("generation service unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// UpstreamError is a non-2xx answer from the generation service. Body is kept
// as opaque text.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation service returned status %d: %s", e.StatusCode, e.Body)
}

// ValidationError is a request the generation service refuses to forward to
// Gemini.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }
