package cin7

import (
	"errors"
	"fmt"
)

// Common Cin7 API errors
var (
	// ErrMissingAPIKey is returned when a client is built without credentials.
	ErrMissingAPIKey = errors.New("missing Cin7 API key")

	// ErrRequestFailed is returned when the HTTP request could not be
	// completed (network failure, timeout, cancellation).
	ErrRequestFailed = errors.New("Cin7 API request failed")

	// ErrUnexpectedStatus is returned when the API answers with a non-2xx
	// status code.
	ErrUnexpectedStatus = errors.New("Cin7 API returned unexpected status")

	// ErrDecodeFailed is returned when the response body is not the expected
	// JSON document array.
	ErrDecodeFailed = errors.New("failed to decode Cin7 API response")
)

// APIError wraps errors with additional context about a failed API call.
type APIError struct {
	// Op is the operation that failed (e.g., "FetchPage").
	Op string

	// Err is the underlying error.
	Err error

	// Endpoint is the API endpoint that was called (never the full URL, the
	// query string carries no secrets but the endpoint is enough context).
	Endpoint string

	// StatusCode is the HTTP status code (0 when the request never
	// completed).
	StatusCode int

	// Page is the page number that was requested.
	Page int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("cin7: %s failed (endpoint: %s, page: %d, status: %d): %v", e.Op, e.Endpoint, e.Page, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("cin7: %s failed (endpoint: %s, page: %d): %v", e.Op, e.Endpoint, e.Page, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *APIError) Unwrap() error {
	return e.Err
}
