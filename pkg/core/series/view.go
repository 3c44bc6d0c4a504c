package series

import "slices"

// View is a read-only window over a Series.
type View interface {
	// Name returns the parent series name.
	Name() string
	// Rings returns the displayed rings in order. Start offsets stay
	// relative to the series origin.
	Rings() []Ring
	// NRings returns the number of displayed rings.
	NRings() int
	// Total returns the sum of the displayed ring widths.
	Total() int
	// PithOffset returns the distance from the series origin to the
	// start of the first displayed ring.
	PithOffset() int
}

// NewView selects a view from a signed block size: 0 shows every ring,
// n > 0 the first n rings and n < 0 the last -n rings.
func NewView(s *Series, block int) View {
	switch {
	case block > 0:
		return Leading{Series: s, N: block}
	case block < 0:
		n := -block
		if n < 0 { // -math.MinInt
			n = len(s.rings)
		}
		return Trailing{Series: s, N: n}
	default:
		return Full{Series: s}
	}
}

// Full shows the whole series.
type Full struct {
	Series *Series
}

func (v Full) Name() string    { return v.Series.Name }
func (v Full) Rings() []Ring   { return slices.Clone(v.Series.rings) }
func (v Full) NRings() int     { return len(v.Series.rings) }
func (v Full) Total() int      { return sumWidths(v.Series.rings) }
func (v Full) PithOffset() int { return 0 }

// Leading shows the first N rings, starting at the series origin.
type Leading struct {
	Series *Series
	N      int
}

func (v Leading) window() []Ring {
	return v.Series.rings[:min(v.N, len(v.Series.rings))]
}

func (v Leading) Name() string    { return v.Series.Name }
func (v Leading) Rings() []Ring   { return slices.Clone(v.window()) }
func (v Leading) NRings() int     { return len(v.window()) }
func (v Leading) Total() int      { return sumWidths(v.window()) }
func (v Leading) PithOffset() int { return 0 }

// Trailing shows the last N rings. Its pith offset is the width of the
// skipped prefix.
type Trailing struct {
	Series *Series
	N      int
}

func (v Trailing) window() []Ring {
	rings := v.Series.rings
	return rings[len(rings)-min(v.N, len(rings)):]
}

func (v Trailing) Name() string  { return v.Series.Name }
func (v Trailing) Rings() []Ring { return slices.Clone(v.window()) }
func (v Trailing) NRings() int   { return len(v.window()) }
func (v Trailing) Total() int    { return sumWidths(v.window()) }

func (v Trailing) PithOffset() int {
	w := v.window()
	if len(w) == 0 {
		return 0
	}
	return w[0].Start
}

var (
	_ View = Full{}
	_ View = Leading{}
	_ View = Trailing{}
)
