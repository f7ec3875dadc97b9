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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Rendering errors
	ErrIO     ErrorCode = "IO"     // sink write failed
	ErrLayout ErrorCode = "LAYOUT" // impossible layout request

	// Interactive errors
	ErrInput ErrorCode = "INPUT" // prompt input unreadable or at end of stream

	// Trace errors
	ErrHandleMisuse ErrorCode = "HANDLE_MISUSE" // operation on a non-top or released scope

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// RdxError represents a structured error with code and details
type RdxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RdxError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RdxError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RdxError) Is(target error) bool {
	var targetErr *RdxError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RdxError with the given code and message
func New(code ErrorCode, message string) *RdxError {
	return &RdxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RdxError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RdxError {
	return &RdxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an RdxError
func Wrap(err error, code ErrorCode, message string) *RdxError {
	if err == nil {
		return nil
	}
	return &RdxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RdxError {
	if err == nil {
		return nil
	}
	return &RdxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RdxError) WithDetail(key string, value interface{}) *RdxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RdxError) WithDetails(details map[string]interface{}) *RdxError {
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
	var rdxErr *RdxError
	if errors.As(err, &rdxErr) {
		return rdxErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an RdxError
func GetErrorCode(err error) ErrorCode {
	var rdxErr *RdxError
	if errors.As(err, &rdxErr) {
		return rdxErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an RdxError
func GetErrorDetails(err error) map[string]interface{} {
	var rdxErr *RdxError
	if errors.As(err, &rdxErr) {
		return rdxErr.Details
	}
	return nil
}
