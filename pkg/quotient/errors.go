package quotient

import (
	"errors"
	"fmt"
)

// APIError represents an error response from the Quotient API.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// ConversionError reports a raw wire value that could not be coerced into
// the declared field type.
type ConversionError struct {
	Field    string
	Expected string
	Value    string
	Cause    error
}

func (e *ConversionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field %q: cannot convert %s to %s", e.Field, e.Value, e.Expected)
	}

	return fmt.Sprintf("cannot convert %s to %s", e.Value, e.Expected)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// ValidationError reports a converted value that failed a declared check.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// MissingFieldError reports a required field absent from a raw response.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q missing from response", e.Field)
}

// PaginationError reports a list envelope whose next link could not be
// followed. List calls are all-or-nothing: results accumulated before the
// failure are discarded.
type PaginationError struct {
	Next  string
	Cause error
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("malformed pagination link %q: %v", e.Next, e.Cause)
}

func (e *PaginationError) Unwrap() error {
	return e.Cause
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrNotFound            = errors.New("resource not found")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrTooManyPages        = errors.New("pagination exceeded the page ceiling")
	ErrNoRootComponent     = errors.New("item has no root component")
	ErrAssemblyCycle       = errors.New("assembly component graph contains a cycle")
	ErrUnknownComponent    = errors.New("assembly references an unknown component id")
	ErrPrimaryKeyUnset     = errors.New("resource primary key is unset")
	ErrEmptyBatch          = errors.New("batch request contains no resources")
)

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}

	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsValidation checks if the error came from the converter or validation
// layer rather than the transport.
func IsValidation(err error) bool {
	var (
		convErr    *ConversionError
		validErr   *ValidationError
		missingErr *MissingFieldError
	)

	return errors.As(err, &convErr) || errors.As(err, &validErr) || errors.As(err, &missingErr)
}
