// ABOUTME: Error types and handling for the FeedFinder library
// ABOUTME: Translates core detection and fetch errors into one structured error type

package feedfinder

import (
	"errors"
	"fmt"
	"net/http"

	coreerrors "feedfinder/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a bad page URL or option
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeResolution indicates a candidate reference could not be resolved
	ErrorTypeResolution ErrorType = "resolution"

	// ErrorTypeQuery indicates a document query could not run
	ErrorTypeQuery ErrorType = "query"

	// ErrorTypeNotFound indicates the fetched page returned 404
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeNetwork indicates the page could not be fetched
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrNoHTTPClient is returned by Discover when the client was built without one
var ErrNoHTTPClient = NewError(ErrorTypeConfiguration, "no HTTP client configured")

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsResolutionError checks if an error is a URL resolution error
func IsResolutionError(err error) bool {
	return hasType(err, ErrorTypeResolution)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return hasType(err, ErrorTypeNetwork)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// wrapError maps core errors onto library errors, keeping the original as cause
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var (
		resolutionErr *coreerrors.URLResolutionError
		queryErr      *coreerrors.QueryError
		validationErr *coreerrors.ValidationError
		fetchErr      *coreerrors.FetchError
	)

	switch {
	case errors.As(err, &resolutionErr):
		return NewError(ErrorTypeResolution, "candidate could not be resolved").
			WithCause(err).
			WithContext("reference", resolutionErr.Reference)
	case errors.As(err, &queryErr):
		return NewError(ErrorTypeQuery, "document query failed").
			WithCause(err).
			WithContext("selector", queryErr.Selector)
	case errors.As(err, &validationErr):
		return NewError(ErrorTypeValidation, validationErr.Message).
			WithCause(err).
			WithContext("field", validationErr.Field)
	case errors.As(err, &fetchErr):
		errType := ErrorTypeNetwork
		if fetchErr.StatusCode == http.StatusNotFound {
			errType = ErrorTypeNotFound
		}
		e := NewError(errType, "failed to fetch page").
			WithCause(err).
			WithContext("url", fetchErr.URL)
		if fetchErr.StatusCode != 0 {
			e.WithContext("status", fetchErr.StatusCode)
		}
		return e
	default:
		return NewError(ErrorTypeInternal, "feed detection failed").WithCause(err)
	}
}
