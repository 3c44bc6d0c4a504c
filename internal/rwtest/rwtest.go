// Package rwtest holds RW-format fixtures shared by package tests.
package rwtest

import (
	"fmt"
	"strconv"
	"strings"
)

// File describes one RW file.
type File struct {
	Label    string
	Measurer string
	Measured string
	Start    int
	Widths   []any // int or string entries, strings model bad lines
}

// Text renders f in RW format with CR/LF line ends and a leading space on
// the data lines, the way the old measuring machines wrote them.
func (f File) Text() string {
	lines := []string{f.Measurer, f.Measured, strconv.Itoa(f.Start)}
	for _, w := range f.Widths {
		lines = append(lines, fmt.Sprint(w))
	}
	lines = append(lines, "999")
	return strings.Join(lines, "\r\n ") + "\r\n"
}

// Ints returns the integer widths of f, skipping string entries.
func (f File) Ints() []int {
	var out []int
	for _, w := range f.Widths {
		if v, ok := w.(int); ok {
			out = append(out, v)
		}
	}
	return out
}

// Specified builds a file holding exactly the given widths.
func Specified(widths ...int) File {
	ws := make([]any, len(widths))
	for i, w := range widths {
		ws[i] = w
	}
	return File{
		Label:    fmt.Sprintf("TestN=%d", len(widths)),
		Measurer: "XXX",
		Measured: "01/19/2038",
		Start:    1001,
		Widths:   ws,
	}
}

// Sum returns the sum of ws.
func Sum(ws []int) int {
	var t int
	for _, w := range ws {
		t += w
	}
	return t
}

var goodWidths = []int{
	39, 60, 83, 113, 167, 83, 64,
	110, 93, 91, 150, 128, 117, 156, 110, 103, 172,
	186, 170, 186, 132, 84, 61, 34, 43, 80, 120,
	155, 84, 141, 143, 139, 119, 148, 30, 144, 90,
	101, 111, 155, 28, 129, 101, 69, 95, 121, 103,
	42, 98, 167, 103, 86, 100, 91, 40, 169, 129,
	81, 43, 77, 128, 23, 110, 130, 169, 27, 185,
	153, 118, 128, 22, 57, 108, 77, 102, 123, 118,
	87, 114,
}

var extraWidths = []int{
	236, 303, 111, 129,
	222, 167, 148, 172, 167, 42, 115, 72, 61, 202,
	131, 161, 127, 92, 29, 21, 22, 30, 25, 54,
	49, 31, 54, 76, 64, 32, 68, 8, 48, 54,
	47, 65, 92, 18, 57, 64, 36, 54, 75, 57,
	16, 55, 80, 63, 45, 61, 32, 19, 73, 64,
	42, 9, 36, 51, 7, 58, 54, 71, 17, 71,
	54, 42, 46, 19, 33, 60, 29, 45, 44, 65,
	31, 66, 65, 38, 34, 41, 16,
}

// Good is a clean 79-ring series.
func Good() File {
	return File{Label: "BK-22", Measurer: "JSD", Measured: "09/05/2013", Start: 1193, Widths: anys(goodWidths)}
}

// Extra is a second clean series with a different total width.
func Extra() File {
	return File{Label: "BK-102", Measurer: "JSD", Measured: "09/05/2013", Start: 1196, Widths: anys(extraWidths)}
}

// BadDate is Good with a prose measurement date.
func BadDate() File {
	f := Good()
	f.Label = "BK-22-bad-measurement-date"
	f.Measured = "Thursday, the fifth of September, 2013"
	return f
}

// Letters is Good with some widths spelled out. Entries such as "11O"
// still contain a digit run and parse as a (wrong) width.
func Letters() File {
	f := Good()
	f.Label = "BK-22-letters-for-numbers"
	f.Widths = []any{
		39, "sixty", 83, 113, 167, 83, 64,
		"one_hundred_and_ten", 93, 91, "one_hundred_and_fifty", 128, 117, 156, "11O", "1O3", 172,
		186, "one_hundred_and_seventy", 186, 132, 84, 61, 34, 43, "eighty", "one_hundred_and_twenty",
	}
	return f
}

func anys(ws []int) []any {
	out := make([]any, len(ws))
	for i, w := range ws {
		out[i] = w
	}
	return out
}
