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
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Registry errors
	ErrRegistryLoad  ErrorCode = "REGISTRY_LOAD"
	ErrRegistryWrite ErrorCode = "REGISTRY_WRITE"

	// Linking errors
	ErrTargetDir              ErrorCode = "TARGET_DIR"
	ErrNameCollisionExhausted ErrorCode = "NAME_COLLISION_EXHAUSTED"
	ErrFilesystem             ErrorCode = "FILESYSTEM"

	// Desktop integration errors
	ErrClipboard ErrorCode = "CLIPBOARD"

	// Plugin errors
	ErrPluginLoad  ErrorCode = "PLUGIN_LOAD"
	ErrPluginState ErrorCode = "PLUGIN_STATE"
)

// Error is a failure carrying a stable code, a message and optional
// key/value details for callers that report them
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *Error) Error() string {
	msg := "[" + string(e.Code) + "] " + e.Message
	if e.Wrapped == nil {
		return msg
	}
	return msg + ": " + e.Wrapped.Error()
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error with the same code, so errors.Is(err, New(code, ""))
// works as a code check
func (e *Error) Is(target error) bool {
	t, ok := asError(target)
	return ok && t.Code == e.Code
}

func build(code ErrorCode, message string, wrapped error) *Error {
	return &Error{Code: code, Message: message, Details: map[string]interface{}{}, Wrapped: wrapped}
}

// New creates an Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return build(code, message, nil)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. It returns nil when err is nil,
// so only call it on a failure path: a nil *Error stored in an error
// interface is not a nil error.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

// WithDetail records one detail and returns e for chaining
func (e *Error) WithDetail(key string, value interface{}) *Error {
	return e.WithDetails(map[string]interface{}{key: value})
}

// WithDetails merges details into e and returns e for chaining
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{}, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsErrorCode reports whether any *Error in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := asError(err)
	return ok && e.Code == code
}

// GetErrorCode returns the code of the first *Error in err's chain, or
// ErrUnknown
func GetErrorCode(err error) ErrorCode {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the first *Error in err's chain
func GetErrorDetails(err error) map[string]interface{} {
	if e, ok := asError(err); ok {
		return e.Details
	}
	return nil
}
