package sink

import (
	"context"
	"encoding/xml"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/rwcore/internal/rwtest"
	"github.com/matzehuels/rwcore/pkg/core/render"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
	"github.com/matzehuels/rwcore/pkg/core/series"
	errs "github.com/matzehuels/rwcore/pkg/errors"
)

type svgDoc struct {
	XMLName xml.Name   `xml:"svg"`
	Width   string     `xml:"width,attr"`
	Height  string     `xml:"height,attr"`
	ViewBox string     `xml:"viewBox,attr"`
	Version string     `xml:"version,attr"`
	Panels  []svgGroup `xml:"g"`
}

type svgGroup struct {
	Transform string     `xml:"transform,attr"`
	Groups    []svgGroup `xml:"g"`
	Text      *svgText   `xml:"text"`
	Rect      *svgRect   `xml:"rect"`
	Paths     []svgPath  `xml:"path"`
}

type svgText struct {
	X          string `xml:"x,attr"`
	Y          string `xml:"y,attr"`
	FontSize   string `xml:"font-size,attr"`
	FontFamily string `xml:"font-family,attr"`
	Anchor     string `xml:"text-anchor,attr"`
	Value      string `xml:",chardata"`
}

type svgRect struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

type svgPath struct {
	D      string `xml:"d,attr"`
	Stroke string `xml:"stroke,attr"`
	Fill   string `xml:"fill,attr"`
}

var (
	bandPath    = regexp.MustCompile(`^M[0-9,. ]+H[0-9,. ]+A[0-9,. ]+[HV][0-9,. ]+(V[0-9,. ]+)?A[0-9,. ]+Z$`)
	firstHLine  = regexp.MustCompile(`H([0-9.]+)`)
	firstRadius = regexp.MustCompile(`A([0-9.]+),`)
)

func attrFloat(t *testing.T, v string) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		t.Fatalf("attribute %q is not a number: %v", v, err)
	}
	return f
}

func plan(t *testing.T, block int, files ...rwtest.File) layout.Layout {
	t.Helper()
	views := make([]series.View, len(files))
	for i, f := range files {
		views[i] = series.NewView(series.Parse(f.Label, strings.NewReader(f.Text()), nil), block)
	}
	return layout.Plan(layout.DefaultCanvas(), views)
}

func parseSVG(t *testing.T, data []byte) svgDoc {
	t.Helper()
	var doc svgDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid SVG: %v\n%s", err, data)
	}
	return doc
}

func TestRenderSVGDocument(t *testing.T) {
	doc := parseSVG(t, RenderSVG(plan(t, 0, rwtest.Good())))

	if doc.Width != "264mm" {
		t.Errorf("width = %q, want 264mm", doc.Width)
	}
	if want := strconv.FormatFloat(2362*(264.0/3118), 'f', -1, 64) + "mm"; doc.Height != want {
		t.Errorf("height = %q, want %q", doc.Height, want)
	}
	if doc.ViewBox != "0 0 3118 2362" {
		t.Errorf("viewBox = %q", doc.ViewBox)
	}
	if doc.Version != "1.1" {
		t.Errorf("version = %q", doc.Version)
	}
	if doc.XMLName.Space != "http://www.w3.org/2000/svg" {
		t.Errorf("namespace = %q", doc.XMLName.Space)
	}
}

func TestRenderSVGPanels(t *testing.T) {
	files := []rwtest.File{rwtest.Good(), rwtest.Extra()}
	doc := parseSVG(t, RenderSVG(plan(t, 0, files...)))

	if len(doc.Panels) != len(files) {
		t.Fatalf("got %d panels, want %d", len(doc.Panels), len(files))
	}
	for i, f := range files {
		panel := doc.Panels[i]
		if want := fmt.Sprintf("translate(150, %d)", i*200); panel.Transform != want {
			t.Errorf("panel %d transform = %q, want %q", i, panel.Transform, want)
		}
		if len(panel.Groups) != 2 {
			t.Fatalf("panel %d has %d groups, want label and core", i, len(panel.Groups))
		}

		label := panel.Groups[0]
		if label.Transform != "scale(1)" {
			t.Errorf("label transform = %q", label.Transform)
		}
		want := &svgText{X: "-24.0000", Y: "150.0000", FontSize: "24", FontFamily: "Verdana", Anchor: "end", Value: f.Label}
		if diff := cmp.Diff(want, label.Text); diff != "" {
			t.Errorf("panel %d label mismatch (-want +got):\n%s", i, diff)
		}

		widths := f.Ints()
		total := rwtest.Sum(widths)
		core := panel.Groups[1]
		if want := "scale(" + strconv.FormatFloat(2968/float64(total), 'f', -1, 64) + ")"; core.Transform != want {
			t.Errorf("core transform = %q, want %q", core.Transform, want)
		}
		if core.Rect == nil || attrFloat(t, core.Rect.Width) != float64(total) || core.Rect.Fill != "goldenrod" {
			t.Errorf("panel %d background = %+v, want width %d", i, core.Rect, total)
		}
		if len(core.Paths) != len(widths) {
			t.Fatalf("panel %d has %d paths, want %d", i, len(core.Paths), len(widths))
		}

		end := 0
		for j, p := range core.Paths {
			end += widths[j]
			if !bandPath.MatchString(p.D) {
				t.Errorf("panel %d ring %d: bad path %q", i, j, p.D)
			}
			if p.Fill != "saddlebrown" || p.Stroke != "none" {
				t.Errorf("panel %d ring %d: fill %q stroke %q", i, j, p.Fill, p.Stroke)
			}
			if got := firstHLine.FindStringSubmatch(p.D)[1]; got != strconv.Itoa(end) {
				t.Errorf("panel %d ring %d: top edge ends at %s, want %d", i, j, got, end)
			}
			if got := firstRadius.FindStringSubmatch(p.D)[1]; got != strconv.Itoa(end) {
				t.Errorf("panel %d ring %d: outer radius %s, want %d", i, j, got, end)
			}
		}
	}
}

func TestRenderSVGTrailingView(t *testing.T) {
	good := rwtest.Good()
	widths := good.Ints()
	doc := parseSVG(t, RenderSVG(plan(t, -25, good)))

	core := doc.Panels[0].Groups[1]
	if len(core.Paths) != 25 {
		t.Fatalf("got %d paths, want 25", len(core.Paths))
	}
	skipped := widths[:len(widths)-25]
	shown := widths[len(widths)-25:]
	if attrFloat(t, core.Rect.Width) != float64(rwtest.Sum(shown)) {
		t.Errorf("background width = %s, want %d", core.Rect.Width, rwtest.Sum(shown))
	}

	x, radius := 0, rwtest.Sum(skipped)
	for j, p := range core.Paths {
		x += shown[j]
		radius += shown[j]
		if got := firstHLine.FindStringSubmatch(p.D)[1]; got != strconv.Itoa(x) {
			t.Errorf("ring %d: top edge ends at %s, want %d", j, got, x)
		}
		if got := firstRadius.FindStringSubmatch(p.D)[1]; got != strconv.Itoa(radius) {
			t.Errorf("ring %d: outer radius %s, want %d", j, got, radius)
		}
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	f := rwtest.Specified(10, 20)
	f.Label = `a<b & "c"`
	doc := parseSVG(t, RenderSVG(plan(t, 0, f)))

	if got := doc.Panels[0].Groups[0].Text.Value; got != f.Label {
		t.Errorf("label = %q, want %q", got, f.Label)
	}
}

func TestRenderSVGBackground(t *testing.T) {
	l := plan(t, 0, rwtest.Specified(10, 20))
	p := l.Panels[0]
	doc := parseSVG(t, RenderSVG(l))

	rect := doc.Panels[0].Groups[1].Rect
	if rect == nil {
		t.Fatal("missing background rect")
	}
	if attrFloat(t, rect.X) != 0 || attrFloat(t, rect.Y) != 0 {
		t.Errorf("background at (%s, %s), want origin", rect.X, rect.Y)
	}
	if got := attrFloat(t, rect.Width); got != 30 {
		t.Errorf("background width = %v, want 30", got)
	}
	if got := attrFloat(t, rect.Height); math.Abs(got-p.BoxDepth) > 1e-4 {
		t.Errorf("background height = %v, want %v", got, p.BoxDepth)
	}
	if rect.Fill != DefaultEarlywood {
		t.Errorf("background fill = %q, want %q", rect.Fill, DefaultEarlywood)
	}
}

func TestRenderSVGNoPanels(t *testing.T) {
	doc := parseSVG(t, RenderSVG(layout.Plan(layout.DefaultCanvas(), nil)))
	if len(doc.Panels) != 0 {
		t.Errorf("got %d panels, want 0", len(doc.Panels))
	}
}

func TestRenderConvertedFormatsNeedConverter(t *testing.T) {
	old := render.Converter
	render.Converter = "rwcore-no-such-converter"
	t.Cleanup(func() { render.Converter = old })

	l := plan(t, 0, rwtest.Specified(10, 20))
	if _, err := RenderPDF(context.Background(), l); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("RenderPDF error = %v, want %s", err, errs.ErrCodeUnsupported)
	}
	if _, err := RenderPNG(context.Background(), l, WithScale(1)); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("RenderPNG error = %v, want %s", err, errs.ErrCodeUnsupported)
	}
}
