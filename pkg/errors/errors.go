// Package errors provides structured error types for rwcore.
//
// Errors carry a machine-readable [Code] so that callers can tell the
// recoverable problems found in a ring-width file (a malformed width line,
// an odd measurement date) apart from failures of the tool itself.
//
// # Error Codes
//
// Codes fall into two groups:
//   - Series diagnostics: reported while reading one RW file. They never
//     abort a run; the series is kept, trimmed or emptied.
//   - Tool errors: invalid options, unreadable files, conversion failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedMeasurement, "Expected a number but found the text %s", text)
//	if errors.Is(err, errors.ErrCodeMalformedMeasurement) {
//	    // skip the line
//	}
//
//	err := errors.Wrap(errors.ErrCodeStructural, ioErr, "read failed").WithLine(12)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Series diagnostics.
const (
	ErrCodeDateFormat           Code = "UNEXPECTED_DATE_FORMAT"
	ErrCodeNonNumericStartDate  Code = "NON_NUMERIC_START_DATE"
	ErrCodeMalformedMeasurement Code = "MALFORMED_MEASUREMENT"
	ErrCodeStructural           Code = "STRUCTURAL_FAILURE"
)

// Tool errors.
const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeNoSeries      Code = "NO_SERIES"
	ErrCodeUnsupported   Code = "UNSUPPORTED"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Line    int    // Input line number, 0 when unknown
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithLine records the input line the error refers to and returns e.
func (e *Error) WithLine(n int) *Error {
	e.Line = n
	return e
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error values,
// and the plain error string otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsDiagnostic reports whether err is a recoverable series diagnostic.
func IsDiagnostic(err error) bool {
	switch GetCode(err) {
	case ErrCodeDateFormat, ErrCodeNonNumericStartDate, ErrCodeMalformedMeasurement, ErrCodeStructural:
		return true
	}
	return false
}
