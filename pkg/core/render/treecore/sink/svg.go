package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/rwcore/pkg/core/render/treecore/arc"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
)

const (
	svgVersion = "1.1"

	// svgDecimals is the precision of coordinates written by svgo. Box
	// depths are in ring-width units and can be well below 1 for wide rings.
	svgDecimals = 4
)

// Fixed tones and label font.
const (
	DefaultEarlywood = "goldenrod"
	DefaultLatewood  = "saddlebrown"
	DefaultFont      = "Verdana"
)

// RenderSVG renders every panel of l into one SVG document.
func RenderSVG(l layout.Layout) []byte {
	c := l.Canvas

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = svgDecimals
	canvas.Startraw(
		attr("width", num(c.PhysicalWidth)+c.PhysicalUnits),
		attr("height", num(c.PhysicalHeight())+c.PhysicalUnits),
		attr("viewBox", fmt.Sprintf("0 0 %s %s", num(c.Width), num(c.Height))),
		attr("version", svgVersion),
	)
	for _, p := range l.Panels {
		renderPanel(canvas, l, p)
	}
	canvas.End()
	return buf.Bytes()
}

func renderPanel(canvas *svg.SVG, l layout.Layout, p layout.Panel) {
	c := l.Canvas
	canvas.Gtransform(fmt.Sprintf("translate(%s, %s)", num(c.Margin), num(p.Y)))

	canvas.Gtransform(scale(l.YScale))
	canvas.Text(-c.FontSize, c.Margin, p.Name,
		attr("font-size", num(c.FontSize)),
		attr("font-family", DefaultFont),
		attr("text-anchor", "end"),
	)
	canvas.Gend()

	canvas.Gtransform(scale(p.XScale))
	canvas.Rect(0, 0, float64(p.Total), p.BoxDepth, attr("fill", DefaultEarlywood))
	for _, b := range arc.Bands(p.Rings, float64(p.PithOffset), p.BoxDepth) {
		canvas.Path(b.Path.String(), attr("stroke", "none"), attr("fill", DefaultLatewood))
	}
	canvas.Gend()

	canvas.Gend()
}

func scale(s float64) string { return "scale(" + num(s) + ")" }

// attr formats a raw attribute; svgo writes strings containing '=' verbatim.
func attr(name, value string) string { return name + `="` + html.EscapeString(value) + `"` }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
