package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a $ref chain that never reaches a concrete schema.
	ErrCircularReference = errors.New("circular reference")

	// ErrUnsupportedShape indicates a schema or media type with no TypeScript rendering.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrUsage indicates the tool was invoked incorrectly.
	ErrUsage = errors.New("usage error")
)

// UsageExitCode is the process exit status for command-line usage errors.
const UsageExitCode = 5

// ParseError represents a failure to parse an OpenAPI document or configuration.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a $ref that could not be followed to a schema.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// IsCircular is true when the reference chain loops without reaching a schema
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrCircularReference && e.IsCircular
}

// UnsupportedShapeError reports a construct the emitters cannot render,
// such as a request media type other than JSON, plain text or multipart.
type UnsupportedShapeError struct {
	// Method is the HTTP method of the operation, if known
	Method string
	// Path is the URL template of the operation, if known
	Path string
	// Location names where the shape was found (e.g. "request body", "response 200")
	Location string
	// MediaType is the offending content type, if any
	MediaType string
	// Message describes the shape
	Message string
}

// Error returns a human-readable error message.
func (e *UnsupportedShapeError) Error() string {
	msg := "unsupported shape"
	if e.Method != "" || e.Path != "" {
		msg += fmt.Sprintf(" in %s %s", e.Method, e.Path)
	}
	if e.Location != "" {
		msg += " (" + e.Location + ")"
	}
	if e.MediaType != "" {
		msg += ": media type " + e.MediaType
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedShapeError) Is(target error) bool {
	return target == ErrUnsupportedShape
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// UsageError reports a malformed command line.
type UsageError struct {
	Message string
}

// Error returns a human-readable error message.
func (e *UsageError) Error() string {
	if e.Message == "" {
		return "usage error"
	}
	return "usage error: " + e.Message
}

// Is reports whether target matches this error type.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// ExitCode returns the process exit status for this error.
func (e *UsageError) ExitCode() int {
	return UsageExitCode
}
