// Package errors provides the typed error taxonomy for cli-helpers-go.
// Callers can distinguish error kinds programmatically (for differentiated
// exit codes or messages) instead of matching on message strings.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of an error for machine-readable
// classification.
type ErrorType int

const (
	// ErrorTypeUnknown is the default error type for unclassified errors.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeLogger covers logger initialization failures. The underlying
	// fault is passed through unchanged as the Cause.
	ErrorTypeLogger
	// ErrorTypeInvalidTimestamp covers timestamp strings that matched no
	// decoding strategy. The verbatim user input is kept in Input.
	ErrorTypeInvalidTimestamp
)

// typeNames maps error types to their string representations.
var typeNames = map[ErrorType]string{
	ErrorTypeUnknown:          "unknown",
	ErrorTypeLogger:           "logger",
	ErrorTypeInvalidTimestamp: "invalid_timestamp",
}

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Error represents a typed error with additional context.
// It implements the error interface and supports error wrapping.
type Error struct {
	// Type is the category of the error.
	Type ErrorType
	// Code is an optional machine-readable error code (e.g., "logger_init").
	Code string
	// Message is the human-readable error message.
	Message string
	// Input is the original, unmodified user input that failed to parse.
	// Only set for invalid-timestamp errors.
	Input string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var prefix string
	if e.Code != "" {
		prefix = fmt.Sprintf("[%s] ", e.Code)
	}
	if e.Input != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s%s: %q: %v", prefix, e.Message, e.Input, e.Cause)
		}
		return fmt.Sprintf("%s%s: %q", prefix, e.Message, e.Input)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s", prefix, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the target error.
// It matches if the target is an *Error with the same Type and,
// when both are set, the same Code.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		if e.Type != targetErr.Type {
			return false
		}
		if e.Code != "" && targetErr.Code != "" {
			return e.Code == targetErr.Code
		}
		return true
	}
	return false
}

// New creates a new Error with the specified type and message.
func New(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates a new Error with the specified type and formatted message.
func Newf(errType ErrorType, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a typed Error.
func Wrap(errType ErrorType, cause error, message string) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// NewInvalidTimestamp creates the invalid-timestamp error for the given
// input. The input is stored verbatim, never a normalized or
// partially-substituted version.
func NewInvalidTimestamp(input string) *Error {
	return &Error{
		Type:    ErrorTypeInvalidTimestamp,
		Code:    CodeInvalidTimestamp,
		Message: "invalid timestamp format",
		Input:   input,
	}
}

// WrapLogger wraps a logger initialization fault. The cause is opaque to
// this package and passed through unchanged.
func WrapLogger(cause error) *Error {
	return &Error{
		Type:    ErrorTypeLogger,
		Code:    CodeLoggerInit,
		Message: "logger initialization error",
		Cause:   cause,
	}
}

// GetType extracts the ErrorType from an error.
// Returns ErrorTypeUnknown if the error is not an *Error.
func GetType(err error) ErrorType {
	var typedErr *Error
	if errors.As(err, &typedErr) {
		return typedErr.Type
	}
	return ErrorTypeUnknown
}

// GetInput extracts the offending input from an error.
// Returns an empty string if the error is not an *Error or has no input.
func GetInput(err error) string {
	var typedErr *Error
	if errors.As(err, &typedErr) {
		return typedErr.Input
	}
	return ""
}

// IsType checks if an error is of a specific ErrorType.
func IsType(err error, errType ErrorType) bool {
	return GetType(err) == errType
}

// IsInvalidTimestamp checks if an error is an invalid-timestamp error.
func IsInvalidTimestamp(err error) bool {
	return IsType(err, ErrorTypeInvalidTimestamp)
}

// IsLogger checks if an error is a logger initialization error.
func IsLogger(err error) bool {
	return IsType(err, ErrorTypeLogger)
}
