// Package series reads tree-ring width measurement series in the legacy RW
// text format and exposes them as ordered, addressable ring records.
//
// # Format
//
// An RW file is line oriented (LF or CR/LF):
//
//	JSD            <- initials of the person who measured the core
//	09/05/2013     <- measurement date, D/M/YY or D/M/YYYY
//	1193           <- calendar (or relative) year of the first ring
//	39             <- one ring width per line, in machine units
//	60
//	...
//	999            <- end-of-series sentinel
//
// Anything after the sentinel is ignored.
//
// # Parsing
//
// [Parse] never fails. Problems are reported as coded diagnostics, both
// appended to [Series.Diagnostics] and sent as text to a [Sink]:
//
//   - an odd measurement date is kept verbatim
//   - a non-numeric start date becomes 0
//   - a width line without digits is skipped
//   - a read error or a missing sentinel empties the series
//
// An empty series keeps its name but has no rings, and is dropped by the
// drawing layout.
//
// # Views
//
// A [View] is a read-only window over a parsed series. [NewView] selects one
// of three variants from a signed block size:
//
//	series.NewView(s, 0)    // Full: every ring
//	series.NewView(s, 25)   // Leading: the first 25 rings
//	series.NewView(s, -25)  // Trailing: the last 25 rings
//
// Each ring keeps its absolute start offset from the series origin (the
// pith side of the core), so a trailing window reports a non-zero
// [View.PithOffset] and the drawing can still centre its arcs on the pith.
package series
