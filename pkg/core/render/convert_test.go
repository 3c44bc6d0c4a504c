package render

import (
	"context"
	"testing"

	errs "github.com/matzehuels/rwcore/pkg/errors"
)

func withConverter(t *testing.T, name string) {
	t.Helper()
	old := Converter
	Converter = name
	t.Cleanup(func() { Converter = old })
}

func TestToPNGRejectsScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		_, err := ToPNG(context.Background(), []byte("<svg/>"), scale)
		if !errs.Is(err, errs.ErrCodeInvalidInput) {
			t.Errorf("ToPNG(scale=%v) error = %v, want %s", scale, err, errs.ErrCodeInvalidInput)
		}
	}
}

func TestMissingConverter(t *testing.T) {
	withConverter(t, "rwcore-no-such-converter")

	if Available() {
		t.Fatal("Available() = true for a missing program")
	}
	if _, err := ToPDF(context.Background(), []byte("<svg/>")); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("ToPDF error = %v, want %s", err, errs.ErrCodeUnsupported)
	}
	if _, err := ToPNG(context.Background(), []byte("<svg/>"), 2); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("ToPNG error = %v, want %s", err, errs.ErrCodeUnsupported)
	}
}

func TestConverterFailure(t *testing.T) {
	// "false" exits non-zero without output on any POSIX system.
	withConverter(t, "false")
	if !Available() {
		t.Skip("false not on PATH")
	}
	if _, err := ToPDF(context.Background(), []byte("<svg/>")); !errs.Is(err, errs.ErrCodeInternal) {
		t.Errorf("ToPDF error = %v, want %s", err, errs.ErrCodeInternal)
	}
}
