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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Pattern errors
	ErrPatternMissing ErrorCode = "PATTERN_MISSING"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Snippet errors
	ErrTemplateMissing ErrorCode = "TEMPLATE_MISSING"
	ErrTemplateInvalid ErrorCode = "TEMPLATE_INVALID"
	ErrAssemble        ErrorCode = "ASSEMBLE"

	// FileSystem errors
	ErrFileRead      ErrorCode = "FILE_READ"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrFileCopy      ErrorCode = "FILE_COPY"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"

	// Verification errors
	ErrVerifyFailed ErrorCode = "VERIFY_FAILED"
)

// TabError represents a structured error with code and details
type TabError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TabError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TabError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a TabError with the same code
func (e *TabError) Is(target error) bool {
	var targetErr *TabError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TabError with the given code and message
func New(code ErrorCode, message string) *TabError {
	return &TabError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TabError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TabError {
	return &TabError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TabError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &TabError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &TabError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TabError) WithDetail(key string, value interface{}) *TabError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	var tabErr *TabError
	for err != nil {
		if !errors.As(err, &tabErr) {
			return false
		}
		if tabErr.Code == code {
			return true
		}
		err = tabErr.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown if err is not a TabError
func GetErrorCode(err error) ErrorCode {
	var tabErr *TabError
	if errors.As(err, &tabErr) {
		return tabErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TabError
func GetErrorDetails(err error) map[string]interface{} {
	var tabErr *TabError
	if errors.As(err, &tabErr) {
		return tabErr.Details
	}
	return nil
}
