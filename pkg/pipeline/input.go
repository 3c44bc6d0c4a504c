package pipeline

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rwcore/pkg/core/series"
	errs "github.com/matzehuels/rwcore/pkg/errors"
)

// Input is one ring-width source.
type Input struct {
	// Name labels the series in the drawing.
	Name string

	// Open returns the RW text. The pipeline closes it after parsing.
	Open func() (io.ReadCloser, error)

	// Sink receives parse messages. Nil means a Messenger on the runner's
	// logger.
	Sink series.Sink
}

// FileInput reads path, labelled with its base name without extension.
func FileInput(path string) Input {
	return Input{
		Name: Label(path),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// ReaderInput wraps an in-memory source. r is read in full on the first
// Open; every Open returns a new reader over those bytes, so the input can
// be loaded any number of times.
func ReaderInput(name string, r io.Reader) Input {
	var (
		once sync.Once
		buf  []byte
		err  error
	)
	return Input{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			once.Do(func() { buf, err = io.ReadAll(r) })
			if err != nil {
				return nil, err
			}
			return io.NopCloser(bytes.NewReader(buf)), nil
		},
	}
}

// Label returns the base name of path without its extension.
func Label(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Messenger logs parse messages for one series.
type Messenger struct {
	Logger *log.Logger
	Label  string
}

// Message implements series.Sink.
func (m Messenger) Message(text string) {
	m.Logger.Warn(text, "series", m.Label)
}

// Report implements series.Reporter. Series diagnostics are warnings;
// anything else, such as a file that cannot be opened, is an error.
func (m Messenger) Report(err *errs.Error) {
	kv := []any{"series", m.Label, "code", errs.GetCode(err)}
	if err.Line > 0 {
		kv = append(kv, "line", err.Line)
	}
	if errs.IsDiagnostic(err) {
		m.Logger.Warn(errs.UserMessage(err), kv...)
		return
	}
	m.Logger.Error(errs.UserMessage(err), kv...)
}

var _ series.Reporter = Messenger{}
