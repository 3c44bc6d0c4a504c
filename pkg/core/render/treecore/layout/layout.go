// Package layout places ring-width series on a fixed drawing canvas.
//
// # Overview
//
// Every drawable series becomes one [Panel], stacked top to bottom. Panels
// share a vertical scale so that all of them fit on one canvas, and each
// panel gets its own horizontal scale so that its rings fill the usable
// width whatever the machine units of the measurements.
//
// # Scales
//
// With n panels and canvas height H:
//
//	YScale   = 1                        if n*PanelPitch <= H
//	         = H / (n*PanelPitch)       otherwise
//	Spacing  = PanelPitch * YScale
//	XScale   = (Width - Margin) / Total
//	BoxDepth = Depth / XScale
//
// Arcs must stay circular, so the core box is drawn under the same scale as
// the rings; BoxDepth is the nominal depth expressed in ring-width units.
package layout

import (
	"github.com/matzehuels/rwcore/pkg/core/series"
)

// Canvas holds the fixed geometry of the output document.
type Canvas struct {
	Width         float64 // viewport width in logical units
	Height        float64 // viewport height in logical units
	Margin        float64 // left gutter holding the labels
	PanelPitch    float64 // vertical distance between panels before scaling
	Depth         float64 // vertical extent of one core drawing
	FontSize      float64 // label size
	PhysicalWidth float64 // page width in PhysicalUnits
	PhysicalUnits string
}

// DefaultCanvas returns the standard 264mm wide drawing.
func DefaultCanvas() Canvas {
	return Canvas{
		Width:         3118,
		Height:        2362,
		Margin:        150,
		PanelPitch:    200,
		Depth:         150,
		FontSize:      24,
		PhysicalWidth: 264,
		PhysicalUnits: "mm",
	}
}

// PhysicalScale returns physical units per logical unit.
func (c Canvas) PhysicalScale() float64 { return c.PhysicalWidth / c.Width }

// PhysicalHeight returns the page height in physical units.
func (c Canvas) PhysicalHeight() float64 { return c.Height * c.PhysicalScale() }

// UsableWidth returns the width left for core drawings.
func (c Canvas) UsableWidth() float64 { return c.Width - c.Margin }

// Panel is one core drawing.
type Panel struct {
	Index      int
	Name       string
	Y          float64 // vertical offset of the panel, canvas units
	Total      int     // sum of displayed ring widths
	PithOffset int     // distance from the series origin to the first displayed ring
	XScale     float64 // ring-width units to canvas units
	BoxDepth   float64 // core depth in ring-width units
	Rings      []series.Ring
}

// Layout is the planned drawing.
type Layout struct {
	Canvas  Canvas
	YScale  float64
	Spacing float64
	Panels  []Panel
}

// Drawable reports whether v can be drawn: it needs at least one ring and a
// non-zero total width to scale against.
func Drawable(v series.View) bool {
	return v.NRings() > 0 && v.Total() > 0
}

// Plan lays out the drawable views in order. Views that are not Drawable
// are skipped without leaving a gap.
func Plan(c Canvas, views []series.View) Layout {
	drawable := make([]series.View, 0, len(views))
	for _, v := range views {
		if Drawable(v) {
			drawable = append(drawable, v)
		}
	}

	l := Layout{Canvas: c, YScale: YScale(c, len(drawable))}
	l.Spacing = c.PanelPitch * l.YScale

	l.Panels = make([]Panel, len(drawable))
	for i, v := range drawable {
		xs := c.UsableWidth() / float64(v.Total())
		l.Panels[i] = Panel{
			Index:      i,
			Name:       v.Name(),
			Y:          float64(i) * l.Spacing,
			Total:      v.Total(),
			PithOffset: v.PithOffset(),
			XScale:     xs,
			BoxDepth:   c.Depth / xs,
			Rings:      v.Rings(),
		}
	}
	return l
}

// YScale returns the uniform vertical scale for n stacked panels.
func YScale(c Canvas, n int) float64 {
	stack := float64(n) * c.PanelPitch
	if stack <= c.Height {
		return 1
	}
	return c.Height / stack
}
