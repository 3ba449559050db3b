package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation provider unavailable: %v", e.Err)
	}
	return "generation provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// IsRateLimit reports whether err wraps a rate limit error.
func IsRateLimit(err error) bool {
	var target *ErrRateLimit
	return errors.As(err, &target)
}

// IsInvalidResponse reports whether err wraps a schema violation.
func IsInvalidResponse(err error) bool {
	var target *ErrInvalidResponse
	return errors.As(err, &target)
}

// IsProviderUnavailable reports whether err wraps a provider outage.
func IsProviderUnavailable(err error) bool {
	var target *ErrProviderUnavailable
	return errors.As(err, &target)
}
