package suggest

import (
	"errors"
	"fmt"
)

// ErrServiceUnavailable is returned by every gateway operation when no
// provider credential is configured. The check happens before any network
// call is attempted.
var ErrServiceUnavailable = errors.New("suggestion service not configured")

// UpstreamError wraps a failed or timed-out provider call.
type UpstreamError struct {
	Err error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("upstream call failed: %v", e.Err)
}

func (e UpstreamError) Unwrap() error { return e.Err }

// ParseError reports a provider response that could not be decoded into the
// expected shape. Missing required keys are a parse failure, never silently
// defaulted.
type ParseError struct {
	Reason string
	Err    error
}

func (e ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

func (e ParseError) Unwrap() error { return e.Err }

// ValidationError reports rejected caller input, raised before any network
// call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
