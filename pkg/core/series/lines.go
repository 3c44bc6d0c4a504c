package series

import (
	"bufio"
	"io"
)

// Lines is a line-buffered reader that counts the lines it has returned.
type Lines struct {
	r *bufio.Reader
	n int
}

// NewLines wraps r for line-at-a-time reading.
func NewLines(r io.Reader) *Lines {
	if br, ok := r.(*bufio.Reader); ok {
		return &Lines{r: br}
	}
	return &Lines{r: bufio.NewReader(r)}
}

// Next returns the next line including its terminator, if any.
// A final line without a terminator is returned normally; io.EOF is
// returned only once no bytes remain.
func (l *Lines) Next() (string, error) {
	s, err := l.r.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	l.n++
	return s, nil
}

// Line returns the 1-based number of the last line returned by Next,
// or 0 before the first call.
func (l *Lines) Line() int { return l.n }
