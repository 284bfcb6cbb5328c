// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for the search pipeline and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
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

// RemoteCallError represents a transport, auth or service failure while
// calling the generative AI capability
type RemoteCallError struct {
	// API names the remote capability
	API string

	// StatusCode is the remote status code, 0 when the call never got a response
	StatusCode int

	// Err is the underlying cause
	Err error
}

// Error implements the error interface
func (e *RemoteCallError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote call to %s failed", e.API)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying cause
func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// ExtractionParseError represents a model response that could not be read
// as the expected JSON array. Diagnostics are for operator logs only.
type ExtractionParseError struct {
	// Strategy is the extraction strategy that produced the candidate
	Strategy string

	// Candidate is the text that failed to parse
	Candidate string

	// Err is the underlying decoding error
	Err error
}

// Error implements the error interface
func (e *ExtractionParseError) Error() string {
	if e.Err == nil {
		return "processing failure"
	}
	return fmt.Sprintf("processing failure: %v", e.Err)
}

// Unwrap returns the underlying decoding error
func (e *ExtractionParseError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRemoteCall checks if an error is a RemoteCallError
func IsRemoteCall(err error) bool {
	var remoteErr *RemoteCallError
	return errors.As(err, &remoteErr)
}

// IsExtractionParse checks if an error is an ExtractionParseError
func IsExtractionParse(err error) bool {
	var parseErr *ExtractionParseError
	return errors.As(err, &parseErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
