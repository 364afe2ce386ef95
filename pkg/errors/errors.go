package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Registry errors
	ErrSignatureMismatch ErrorCode = "SIGNATURE_MISMATCH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Script errors
	ErrScriptLoad    ErrorCode = "SCRIPT_LOAD"
	ErrScriptParse   ErrorCode = "SCRIPT_PARSE"
	ErrScriptInvalid ErrorCode = "SCRIPT_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// Detail keys carried by a signature mismatch
const (
	DetailEvent    = "event"
	DetailExpected = "expected"
	DetailActual   = "actual"
)

// EvregError represents a structured error with code and details
type EvregError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EvregError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EvregError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EvregError) Is(target error) bool {
	var targetErr *EvregError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EvregError with the given code and message
func New(code ErrorCode, message string) *EvregError {
	return &EvregError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EvregError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EvregError {
	return &EvregError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EvregError
func Wrap(err error, code ErrorCode, message string) *EvregError {
	if err == nil {
		return nil
	}
	return &EvregError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EvregError {
	if err == nil {
		return nil
	}
	return &EvregError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// SignatureMismatch builds the error returned when a handler's declared
// parameter signature disagrees with the one recorded for its event.
// expected and actual are already rendered.
func SignatureMismatch(eventID interface{}, expected, actual string) *EvregError {
	return Newf(ErrSignatureMismatch,
		"handler: parameter signature does not match the expected signature for event ID %v. Expected: %s, Actual: %s",
		eventID, expected, actual).
		WithDetail(DetailEvent, eventID).
		WithDetail(DetailExpected, expected).
		WithDetail(DetailActual, actual)
}

// WithDetail adds a detail to the error
func (e *EvregError) WithDetail(key string, value interface{}) *EvregError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *EvregError) WithDetails(details map[string]interface{}) *EvregError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var evregErr *EvregError
	if errors.As(err, &evregErr) {
		return evregErr.Code == code
	}
	return false
}

// IsSignatureMismatch reports whether err is a signature mismatch
func IsSignatureMismatch(err error) bool {
	return IsErrorCode(err, ErrSignatureMismatch)
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EvregError
func GetErrorCode(err error) ErrorCode {
	var evregErr *EvregError
	if errors.As(err, &evregErr) {
		return evregErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EvregError
func GetErrorDetails(err error) map[string]interface{} {
	var evregErr *EvregError
	if errors.As(err, &evregErr) {
		return evregErr.Details
	}
	return nil
}
