// Package arc computes the latewood band outline of each ring in a core
// drawing.
//
// # Geometry
//
// A core drawing is the box [0, Total] x [0, BoxDepth] in ring-width units,
// y growing downwards. The pith sits on the top edge at x = -f, where f is
// the pith offset of the displayed window, so every ring boundary is a
// circle centred at (-f, 0). The latewood of a ring is the band between the
// earlywood boundary r_e and the outer boundary r_w, clipped to the box.
//
// The band always starts on the top edge. Where each circle leaves the box
// decides the outline:
//
//	A  r_w <= d                  both circles reach the left edge
//	B  r_e > d, √(r_e²-d²) > f   both circles reach the bottom edge
//	C  √(r_w²-d²) <= f           both circles reach the left edge
//	D  otherwise                 outer on the bottom, inner on the left:
//	                             the band wraps the lower left corner
//
// Conditions are tested in that order, so ties resolve to A or C.
package arc

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/rwcore/pkg/core/series"
)

// EarlywoodFraction is the share of each ring drawn as earlywood.
const EarlywoodFraction = 0.75

// Case identifies where a latewood band leaves the core box.
type Case int

const (
	CaseLeft       Case = iota // A: both boundaries exit through the left edge
	CaseBottom                 // B: both boundaries exit through the bottom edge
	CaseLeftOffset             // C: left edge, pith displaced to the left
	CaseCorner                 // D: outer on the bottom, inner on the left
)

func (c Case) String() string {
	switch c {
	case CaseLeft:
		return "left"
	case CaseBottom:
		return "bottom"
	case CaseLeftOffset:
		return "left-offset"
	case CaseCorner:
		return "corner"
	}
	return "Case(" + strconv.Itoa(int(c)) + ")"
}

// Point is a position in ring-width units.
type Point struct{ X, Y float64 }

// Band is the latewood outline of one ring.
type Band struct {
	Case      Case
	XA, XB    float64 // top edge of the band, local coordinates
	RE, RW    float64 // earlywood and outer radius from the pith
	OuterExit Point   // where the r_w arc leaves the box
	InnerExit Point   // where the r_e arc leaves the box
	Path      Path
}

// Classify selects the boundary case for radii rw >= re, box depth d and
// pith offset f.
func Classify(rw, re, d, f float64) Case {
	switch {
	case rw <= d:
		return CaseLeft
	case re > d && leg(re, d) > f:
		return CaseBottom
	case leg(rw, d) <= f:
		return CaseLeftOffset
	default:
		return CaseCorner
	}
}

// Latewood computes the band of ring r whose left edge is at local x, for
// pith offset f and box depth d.
func Latewood(r series.Ring, x, f, d float64) Band {
	w := float64(r.Width)
	ew := EarlywoodFraction * w
	b := Band{
		RE: float64(r.Start) + ew,
		RW: float64(r.Start) + w,
		XA: x + ew,
		XB: x + w,
	}
	b.Case = Classify(b.RW, b.RE, d, f)

	p := Path{
		{Op: MoveTo, X: b.XA, Y: 0},
		{Op: HLineTo, X: b.XB},
	}
	switch b.Case {
	case CaseLeft, CaseLeftOffset:
		b.OuterExit = Point{0, leg(b.RW, f)}
		b.InnerExit = Point{0, leg(b.RE, f)}
		p = append(p,
			Segment{Op: ArcTo, R: b.RW, Sweep: true, X: b.OuterExit.X, Y: b.OuterExit.Y},
			Segment{Op: VLineTo, Y: b.InnerExit.Y},
		)
	case CaseBottom:
		b.OuterExit = Point{leg(b.RW, d) - f, d}
		b.InnerExit = Point{leg(b.RE, d) - f, d}
		p = append(p,
			Segment{Op: ArcTo, R: b.RW, Sweep: true, X: b.OuterExit.X, Y: b.OuterExit.Y},
			Segment{Op: HLineTo, X: b.InnerExit.X},
		)
	case CaseCorner:
		b.OuterExit = Point{leg(b.RW, d) - f, d}
		b.InnerExit = Point{0, leg(b.RE, f)}
		p = append(p,
			Segment{Op: ArcTo, R: b.RW, Sweep: true, X: b.OuterExit.X, Y: b.OuterExit.Y},
			Segment{Op: HLineTo, X: 0},
			Segment{Op: VLineTo, Y: b.InnerExit.Y},
		)
	}
	b.Path = append(p,
		Segment{Op: ArcTo, R: b.RE, X: b.XA, Y: 0},
		Segment{Op: ClosePath},
	)
	return b
}

// Bands computes the band of every ring, laying the rings out from local
// x = 0 in order.
func Bands(rings []series.Ring, f, d float64) []Band {
	bands := make([]Band, len(rings))
	var x float64
	for i, r := range rings {
		bands[i] = Latewood(r, x, f, d)
		x = bands[i].XB
	}
	return bands
}

// leg returns √(h²-a²), the other side of a right triangle with hypotenuse
// h. Rounding noise below zero is clamped.
func leg(h, a float64) float64 {
	return math.Sqrt(math.Max(0, h*h-a*a))
}

// Op is an SVG path command.
type Op byte

const (
	MoveTo    Op = 'M'
	HLineTo   Op = 'H'
	VLineTo   Op = 'V'
	ArcTo     Op = 'A'
	ClosePath Op = 'Z'
)

// Segment is one path command. H uses X only, V uses Y only; arcs are
// circular with radius R and no rotation.
type Segment struct {
	Op    Op
	X, Y  float64
	R     float64
	Large bool
	Sweep bool
}

// Path is a sequence of path commands.
type Path []Segment

// String renders p as SVG path data.
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(s.Op))
		switch s.Op {
		case MoveTo:
			sb.WriteString(num(s.X) + "," + num(s.Y))
		case HLineTo:
			sb.WriteString(num(s.X))
		case VLineTo:
			sb.WriteString(num(s.Y))
		case ArcTo:
			sb.WriteString(num(s.R) + "," + num(s.R) + " 0 " + flag(s.Large) + "," + flag(s.Sweep) + " " + num(s.X) + "," + num(s.Y))
		}
	}
	return sb.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
