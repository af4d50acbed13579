// Package fixedid - errors.go provides error values and error types with
// enough context to tell why a parse or a random read failed.

package fixedid

import (
	"errors"
	"fmt"
)

// Errors returned by the Parse* functions, the Generator and the sql/encoding
// interface implementations. Use errors.Is() to test for them.
var (
	// ErrInvalidLength is returned when an input does not have the exact
	// length its format requires.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCharacter is returned when a hex digit position holds a
	// character outside 0-9, a-f, A-F.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidSeparator is returned when a canonical GUID string is missing
	// a hyphen at offset 8, 13, 18 or 23.
	ErrInvalidSeparator = errors.New("invalid separator")

	// ErrInvalidBase64 is returned when a base64 input contains a character
	// outside the standard alphabet or has malformed padding.
	ErrInvalidBase64 = errors.New("invalid base64 encoding")

	// ErrRandomSource is returned when the random source fails to deliver
	// the requested number of bytes.
	ErrRandomSource = errors.New("random source failure")

	// ErrInvalidConfig is returned when Config validation fails.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidLayout is returned when a Layout cannot describe a fixed-width ID.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrNoNodes is returned when a Ring is built from an empty node list.
	ErrNoNodes = errors.New("ring has no nodes")

	// ErrUnsupportedScan is returned by Scan for source types it cannot read.
	ErrUnsupportedScan = errors.New("unsupported scan source")
)

// ============================================================================
// Custom Error Types
// ============================================================================

// ParseError describes why an encoded identifier was rejected.
//
// Example usage:
//
//	g, err := fixedid.ParseGUID(s)
//	if err != nil {
//	    var perr *fixedid.ParseError
//	    if errors.As(err, &perr) {
//	        log.Printf("bad %s at offset %d: %s", perr.Format, perr.Offset, perr.Reason)
//	    }
//	}
type ParseError struct {
	// Format names the encoding being parsed: "guid", "base64" or "binary".
	Format string

	// Input is the rejected value, truncated for long inputs.
	Input string

	// Offset is the byte offset of the first offending character,
	// or -1 when the failure is not positional (e.g. a length mismatch).
	Offset int

	// Reason is a short human-readable explanation.
	Reason string

	// Err is the sentinel this error unwraps to.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("parse %s %q: %v at offset %d: %s", e.Format, e.Input, e.Err, e.Offset, e.Reason)
	}
	return fmt.Sprintf("parse %s %q: %v: %s", e.Format, e.Input, e.Err, e.Reason)
}

// Unwrap returns the underlying sentinel for errors.Is() compatibility.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SourceError represents a short or failed read from a random source.
type SourceError struct {
	// Source is the configured source kind.
	Source Source

	// Want is the number of bytes requested.
	Want int

	// Got is the number of bytes actually read.
	Got int

	// Err is the error reported by the reader, if any.
	Err error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("random source %s: read %d of %d bytes: %v", e.Source, e.Got, e.Want, e.Err)
	}
	return fmt.Sprintf("random source %s: read %d of %d bytes", e.Source, e.Got, e.Want)
}

// Unwrap returns both ErrRandomSource and the reader's own error.
func (e *SourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRandomSource}
	}
	return []error{ErrRandomSource, e.Err}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	// Field is the name of the configuration field that failed validation.
	Field string

	// Value is the invalid value (as string for logging).
	Value string

	// Reason is a human-readable explanation of why the value is invalid.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%s (%s)", e.Field, e.Value, e.Reason)
}

// Unwrap returns the underlying error for errors.Is() compatibility.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// ============================================================================
// Error Constructors
// ============================================================================

// maxErrorInput bounds how much of a rejected input is echoed back.
const maxErrorInput = 64

func newParseError(format, input string, offset int, sentinel error, reason string) *ParseError {
	if len(input) > maxErrorInput {
		input = input[:maxErrorInput] + "..."
	}
	return &ParseError{
		Format: format,
		Input:  input,
		Offset: offset,
		Reason: reason,
		Err:    sentinel,
	}
}

func newLengthError(format, input string, want int) *ParseError {
	return newParseError(format, input, -1, ErrInvalidLength,
		fmt.Sprintf("want %d characters, got %d", want, len(input)))
}

func newConfigError(field, value, reason string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}
