// Package errors provides error types and handling for landscapectl.
// Every failure the API pipeline can produce maps to one of a closed set of
// error codes so the CLI layer can report it without local recovery.
package errors

import (
	"errors"
	"fmt"
)

// AppError represents an application error with an optional error code.
type AppError struct {
	// Code is an error code string for programmatic handling
	Code string
	// Message is a user-friendly error message
	Message string
	// StatusCode is the HTTP status the remote service answered with, when
	// the error originated from a response. Zero for local failures.
	StatusCode int
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to work with AppError.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Error codes, one per failure class of the request pipeline.
const (
	// ErrCodeConfiguration marks missing or invalid credentials. Fatal before
	// any network call is attempted.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"
	// ErrCodeNetwork marks a transport failure (connection refused, timeout,
	// TLS). Reported, never retried.
	ErrCodeNetwork = "NETWORK_ERROR"
	// ErrCodeUnexpectedStatus marks a non-success HTTP status whose body is
	// not a well-formed API error envelope.
	ErrCodeUnexpectedStatus = "UNEXPECTED_STATUS"
	// ErrCodeAPI marks a well-formed error envelope from the remote service.
	ErrCodeAPI = "API_ERROR"
	// ErrCodeDecode marks a success body that matches no known schema.
	ErrCodeDecode = "DECODE_ERROR"
)

// ErrConfiguration creates a configuration error. No network call was made.
func ErrConfiguration(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeConfiguration,
		Message: message,
		Cause:   cause,
	}
}

// ErrNetwork creates a transport-level error.
func ErrNetwork(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeNetwork,
		Message: message,
		Cause:   cause,
	}
}

// ErrUnexpectedStatus creates an error for a non-success HTTP status with an
// unparseable body. The raw body is kept in the message for diagnosis.
func ErrUnexpectedStatus(statusCode int, body string) *AppError {
	return &AppError{
		Code:       ErrCodeUnexpectedStatus,
		Message:    fmt.Sprintf("unexpected status %d: %s", statusCode, body),
		StatusCode: statusCode,
	}
}

// ErrAPI creates an error from a service-provided error envelope. The code
// and message come from the remote service and are not a local bug.
func ErrAPI(statusCode int, code, message string) *AppError {
	return &AppError{
		Code:       ErrCodeAPI,
		Message:    fmt.Sprintf("%s: %s", code, message),
		StatusCode: statusCode,
	}
}

// ErrDecode creates an error for a malformed success body. Indicates a
// protocol mismatch between client and service.
func ErrDecode(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeDecode,
		Message: message,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error.
// Returns empty string if the error is not an AppError.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetStatusCode extracts the HTTP status code from an error.
// Returns 0 if the error is not an AppError or carries no response status.
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

// GetErrorMessage extracts a user-friendly message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
