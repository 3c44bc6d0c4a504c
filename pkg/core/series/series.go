package series

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/rwcore/pkg/errors"
)

// EOS is the end-of-series sentinel line.
const EOS = "999"

var (
	nonWord     = regexp.MustCompile(`\W`)
	datePattern = regexp.MustCompile(`\d{1,2}/\d{1,2}/(\d{2}|\d{4})`)
	signedInt   = regexp.MustCompile(`[+-]?\d+`)
	digitRun    = regexp.MustCompile(`\d+`)
)

// Ring is one annual growth increment.
type Ring struct {
	Width int // incremental width
	Start int // sum of the widths of all preceding rings
}

// End returns the distance from the series origin to the outer edge of the ring.
func (r Ring) End() int { return r.Start + r.Width }

// Sink receives the text of non-fatal parse problems.
type Sink interface {
	Message(text string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(text string)

// Message calls f(text).
func (f SinkFunc) Message(text string) { f(text) }

// Reporter is a Sink that wants the coded error rather than its text.
// When a sink implements it, Report is called instead of Message.
type Reporter interface {
	Sink
	Report(err *errs.Error)
}

// Report sends e to sink, preferring Reporter. A nil sink is ignored.
func Report(sink Sink, e *errs.Error) {
	switch r := sink.(type) {
	case nil:
	case Reporter:
		r.Report(e)
	default:
		r.Message(e.Message)
	}
}

// Series is a parsed ring-width measurement series. It is immutable once
// returned by Parse.
type Series struct {
	Name      string // label, usually the file base name
	Initials  string // initials of the measurer, not interpreted
	Measured  string // measurement date, verbatim
	StartDate int    // year of the first ring

	// Diagnostics lists every problem reported while parsing, in order.
	Diagnostics []*errs.Error

	rings []Ring
}

// Rings returns a copy of all rings in measurement order.
func (s *Series) Rings() []Ring { return slices.Clone(s.rings) }

// NRings returns the number of rings in the full series.
func (s *Series) NRings() int { return len(s.rings) }

// Total returns the sum of all ring widths.
func (s *Series) Total() int { return sumWidths(s.rings) }

// EndDate returns the year of the last ring, or StartDate when empty.
func (s *Series) EndDate() int {
	if len(s.rings) == 0 {
		return s.StartDate
	}
	return s.StartDate + len(s.rings) - 1
}

// Parse reads one RW formatted series from r. Problems are reported to sink,
// which may be nil, and recorded in Series.Diagnostics. A read error or an
// input that ends before the EOS sentinel leaves an empty series that still
// carries name.
func Parse(name string, r io.Reader, sink Sink) *Series {
	p := &parser{
		s:    &Series{Name: name},
		in:   NewLines(r),
		sink: sink,
	}
	if err := p.run(); err != nil {
		line := p.in.Line()
		p.report(errs.Wrap(errs.ErrCodeStructural, err,
			"Unexpected error at line %d (%v)", line, err).WithLine(line))
		p.s.reset()
	}
	return p.s
}

// reset empties the series, keeping its name and diagnostics.
func (s *Series) reset() {
	s.rings = nil
	s.Initials = ""
	s.Measured = ""
	s.StartDate = 0
}

type parser struct {
	s    *Series
	in   *Lines
	sink Sink
}

func (p *parser) report(e *errs.Error) {
	p.s.Diagnostics = append(p.s.Diagnostics, e)
	Report(p.sink, e)
}

// next reads a line, turning end of input into io.ErrUnexpectedEOF since the
// sentinel has not been seen yet.
func (p *parser) next() (string, error) {
	line, err := p.in.Next()
	if err == io.EOF {
		return "", fmt.Errorf("end of input before the %s sentinel: %w", EOS, io.ErrUnexpectedEOF)
	}
	return line, err
}

func (p *parser) run() error {
	if err := p.header(); err != nil {
		return err
	}
	return p.widths()
}

func (p *parser) header() error {
	var raw string
	for !nonWord.MatchString(raw) {
		line, err := p.next()
		if err != nil {
			return err
		}
		raw = line
	}
	p.s.Initials = strings.TrimSpace(raw)

	line, err := p.next()
	if err != nil {
		return err
	}
	p.s.Measured = strings.TrimSpace(line)
	if !datePattern.MatchString(p.s.Measured) {
		p.report(errs.New(errs.ErrCodeDateFormat,
			"The measurement date %s was in an unexpected format", p.s.Measured).WithLine(p.in.Line()))
	}

	line, err = p.next()
	if err != nil {
		return err
	}
	start := strings.TrimSpace(line)
	if signedInt.MatchString(start) {
		p.s.StartDate = leadingInt(start)
		return nil
	}
	p.report(errs.New(errs.ErrCodeNonNumericStartDate,
		"Expected a numeric start date but found the text %s", start).WithLine(p.in.Line()))
	return nil
}

func (p *parser) widths() error {
	var pos int
	for {
		line, err := p.next()
		if err != nil {
			return err
		}
		text := strings.TrimSpace(line)
		if text == EOS {
			return nil
		}
		w, ok := width(text)
		if !ok {
			p.report(errs.New(errs.ErrCodeMalformedMeasurement,
				"Expected a number but found the text %s at line %d", text, p.in.Line()).WithLine(p.in.Line()))
			continue
		}
		p.s.rings = append(p.s.rings, Ring{Width: w, Start: pos})
		pos += w
	}
}

// width reports whether text holds a measurement, any digit run, and
// returns its leading integer. Text such as "x12" is a measurement of 0;
// negative values are clamped to 0.
func width(text string) (int, bool) {
	if !digitRun.MatchString(text) {
		return 0, false
	}
	return max(leadingInt(text), 0), true
}

// leadingInt parses an optionally signed integer at the start of text,
// after leading whitespace, ignoring whatever follows. It returns 0 when
// text does not start with a number and saturates on overflow.
func leadingInt(text string) int {
	text = strings.TrimLeft(text, " \t")
	neg := false
	if text != "" && (text[0] == '+' || text[0] == '-') {
		neg = text[0] == '-'
		text = text[1:]
	}
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(text[:end])
	if err != nil {
		v = math.MaxInt
	}
	if neg {
		return -v
	}
	return v
}

func sumWidths(rings []Ring) int {
	var total int
	for _, r := range rings {
		total += r.Width
	}
	return total
}
