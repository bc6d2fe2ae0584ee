// ABOUTME: Error types for feed detection and discovery
// ABOUTME: Detection fails with either a URL resolution error or a document query error

package errors

import (
	"errors"
	"fmt"
)

// URLResolutionError reports a candidate reference that could not be turned into an absolute URL
type URLResolutionError struct {
	// Reference is the raw href or constructed URL that failed
	Reference string

	// Cause is the underlying parse error
	Cause error
}

// Error implements the error interface
func (e *URLResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve url %q: %v", e.Reference, e.Cause)
}

// Unwrap returns the underlying parse error
func (e *URLResolutionError) Unwrap() error {
	return e.Cause
}

// QueryError reports that the document could not be queried with a selector.
// It is an infrastructure fault, never a "no match" result.
type QueryError struct {
	Selector string
	Cause    error
}

// Error implements the error interface
func (e *QueryError) Error() string {
	return fmt.Sprintf("unable to select elements in doc with %q: %v", e.Selector, e.Cause)
}

// Unwrap returns the underlying selector error
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError represents a failure to retrieve a page for discovery
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.StatusCode)
}

// Unwrap returns the transport error, if any
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// IsURLResolution checks if an error is a URLResolutionError
func IsURLResolution(err error) bool {
	var resolutionErr *URLResolutionError
	return errors.As(err, &resolutionErr)
}

// IsQuery checks if an error is a QueryError
func IsQuery(err error) bool {
	var queryErr *QueryError
	return errors.As(err, &queryErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
