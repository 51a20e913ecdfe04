package ay32

import (
	"errors"
	"fmt"

	"github.com/laixingyu123/ay32-client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingBaseURL is returned when no backend base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrInvalidExportData is returned when imported credential data is invalid.
	ErrInvalidExportData = errors.New("invalid export data")

	// ErrDecryptFailed is returned when an encrypted export cannot be decrypted,
	// typically because of a wrong passphrase.
	ErrDecryptFailed = errors.New("decryption failed")
)

// AY32Error is implemented by all SDK errors.
type AY32Error interface {
	error
	AY32Error() // marker method
}

// APIError represents a domain error reported by the backend: the server
// responded, but the envelope carried a non-zero errCode (or no envelope
// at all). Calls that produce an APIError are never retried.
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

// AY32Error implements the AY32Error interface.
func (e *APIError) AY32Error() {}

// NetworkError represents a transport failure where the server never
// produced a response, after the retry budget was exhausted.
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

// AY32Error implements the AY32Error interface.
func (e *NetworkError) AY32Error() {}

// ValidationError represents a parameter precondition failure. It is
// detected locally; no network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AY32Error implements the AY32Error interface.
func (e *ValidationError) AY32Error() {}

// InterceptorError represents a failure raised by a request or response
// interceptor.
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

// AY32Error implements the AY32Error interface.
func (e *InterceptorError) AY32Error() {}

// wrapError converts internal errors to their public counterparts, so
// callers can use errors.As with the exported types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Code:       apiErr.Code,
			HTTPStatus: apiErr.HTTPStatus,
			Message:    apiErr.Message,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:      netErr.Err,
			URL:      netErr.URL,
			Attempts: netErr.Attempts,
		}
	}

	var valErr *apierrors.ValidationError
	if errors.As(err, &valErr) {
		return &ValidationError{
			Field:   valErr.Field,
			Message: valErr.Message,
		}
	}

	var icErr *apierrors.InterceptorError
	if errors.As(err, &icErr) {
		return &InterceptorError{
			Stage: icErr.Stage,
			Err:   icErr.Err,
		}
	}

	return err
}
