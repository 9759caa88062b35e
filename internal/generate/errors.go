// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"errors"
	"fmt"
)

// The generation backend reports failures as one of three classes.
// RateLimitedError and ConnectionError are retried; InvalidRequestError is
// not.

// RateLimitedError means the upstream service refused the call because of
// rate limiting or overload.
type RateLimitedError struct {
	Err error
}

func (e *RateLimitedError) Error() string { return "rate limited: " + e.Err.Error() }
func (e *RateLimitedError) Unwrap() error { return e.Err }

// ConnectionError means the call did not complete: transport failure,
// upstream 5xx, or an unreadable response.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string { return "connection failed: " + e.Err.Error() }
func (e *ConnectionError) Unwrap() error { return e.Err }

// InvalidRequestError means the upstream service rejected the request
// itself (bad parameters, authentication, validation).
type InvalidRequestError struct {
	StatusCode int
	Err        error
}

func (e *InvalidRequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("invalid request (status %d): %v", e.StatusCode, e.Err)
	}
	return "invalid request: " + e.Err.Error()
}
func (e *InvalidRequestError) Unwrap() error { return e.Err }

// UpstreamFatalError is returned by the orchestrator, without retrying,
// when the backend reports an InvalidRequestError.
type UpstreamFatalError struct {
	Err error
}

func (e *UpstreamFatalError) Error() string {
	return "generation request rejected: " + e.Err.Error()
}
func (e *UpstreamFatalError) Unwrap() error { return e.Err }

// ServiceBusyError is returned when every attempt in the retry budget hit a
// retryable error. Callers should ask the user to try again shortly.
type ServiceBusyError struct {
	Attempts int
	Err      error
}

func (e *ServiceBusyError) Error() string {
	return fmt.Sprintf("generation service is busy after %d attempts, please try again shortly: %v", e.Attempts, e.Err)
}
func (e *ServiceBusyError) Unwrap() error { return e.Err }

// IsRetryable reports whether err should be retried. Errors that carry no
// classification are treated as connection failures.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var invalid *InvalidRequestError
	return !errors.As(err, &invalid)
}

// IsServiceBusy reports whether err is a *ServiceBusyError.
func IsServiceBusy(err error) bool {
	var busy *ServiceBusyError
	return errors.As(err, &busy)
}

// IsUpstreamFatal reports whether err is an *UpstreamFatalError.
func IsUpstreamFatal(err error) bool {
	var fatal *UpstreamFatalError
	return errors.As(err, &fatal)
}
