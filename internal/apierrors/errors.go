// Package apierrors provides shared error types for the AY32 client.
package apierrors

import (
	"fmt"
)

// UnknownMessage is the fallback message for failures that carry no
// usable description.
const UnknownMessage = "unknown error"

// APIError represents a domain error reported by the backend: either an
// envelope with a non-zero errCode, or an HTTP error status whose body
// carried no decodable envelope. The server responded, so the call is
// never retried.
type APIError struct {
	// Code is the backend errCode. -1 when the response carried no envelope.
	Code int
	// HTTPStatus is the status of the HTTP response that delivered the error.
	HTTPStatus int
	// Message is the backend errMsg, or a fallback when absent.
	Message string
}

func (e *APIError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("http error %d: %s", e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("http error %d", e.HTTPStatus)
}

// NetworkError represents a transport failure where the server never
// produced a response. It is surfaced once the retry budget is exhausted.
type NetworkError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError represents a parameter precondition failure detected
// locally, before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InterceptorError represents a failure raised by a request or response
// interceptor. The call is aborted without retrying.
type InterceptorError struct {
	// Stage is "request" or "response".
	Stage string
	Err   error
}

func (e *InterceptorError) Error() string {
	return fmt.Sprintf("%s interceptor: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *InterceptorError) Unwrap() error {
	return e.Err
}
