package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedMeasurement, "Expected a number but found the text %s", "sixty")

	if err.Code != ErrCodeMalformedMeasurement {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedMeasurement)
	}
	if err.Message != "Expected a number but found the text sixty" {
		t.Errorf("Message = %q", err.Message)
	}

	expected := "MALFORMED_MEASUREMENT: Expected a number but found the text sixty"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrCodeStructural, io.ErrUnexpectedEOF, "Unexpected error at line %d", 4)

	if err.Cause != io.ErrUnexpectedEOF {
		t.Errorf("Cause = %v, want %v", err.Cause, io.ErrUnexpectedEOF)
	}
	if errors.Unwrap(err) != io.ErrUnexpectedEOF {
		t.Error("Unwrap() should return the cause")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got := err.Error(); got != "STRUCTURAL_FAILURE: Unexpected error at line 4: unexpected EOF" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWithLine(t *testing.T) {
	err := New(ErrCodeMalformedMeasurement, "bad").WithLine(17)
	if err.Line != 17 {
		t.Errorf("Line = %d, want 17", err.Line)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeDateFormat, "x"), ErrCodeDateFormat, true},
		{"non-matching code", New(ErrCodeDateFormat, "x"), ErrCodeStructural, false},
		{"wrapped by fmt", fmt.Errorf("load: %w", New(ErrCodeNoSeries, "x")), ErrCodeNoSeries, true},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"nil error", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "x")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeFileNotFound, "no such file %s", "a.rw")); got != "no such file a.rw" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestIsDiagnostic(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeDateFormat, true},
		{ErrCodeNonNumericStartDate, true},
		{ErrCodeMalformedMeasurement, true},
		{ErrCodeStructural, true},
		{ErrCodeInvalidFormat, false},
		{ErrCodeInternal, false},
	}
	for _, tt := range tests {
		if got := IsDiagnostic(New(tt.code, "x")); got != tt.want {
			t.Errorf("IsDiagnostic(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
