package sink

import (
	"encoding/json"

	"github.com/matzehuels/rwcore/pkg/core/render/treecore/arc"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
	"github.com/matzehuels/rwcore/pkg/core/series"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	series map[string]*series.Series
}

// WithJSONSeries attaches header metadata (initials, dates) to the panels
// whose name matches a given series.
func WithJSONSeries(ss ...*series.Series) JSONOption {
	return func(r *jsonRenderer) {
		if r.series == nil {
			r.series = make(map[string]*series.Series, len(ss))
		}
		for _, s := range ss {
			if s != nil {
				r.series[s.Name] = s
			}
		}
	}
}

type jsonOutput struct {
	Width          float64     `json:"width"`
	Height         float64     `json:"height"`
	PhysicalWidth  float64     `json:"physical_width"`
	PhysicalHeight float64     `json:"physical_height"`
	PhysicalUnits  string      `json:"physical_units"`
	Margin         float64     `json:"margin"`
	YScale         float64     `json:"yscale"`
	Spacing        float64     `json:"spacing"`
	Panels         []jsonPanel `json:"panels"`
}

type jsonPanel struct {
	Index      int        `json:"index"`
	Name       string     `json:"name"`
	Y          float64    `json:"y"`
	Total      int        `json:"total"`
	PithOffset int        `json:"pith_offset"`
	XScale     float64    `json:"xscale"`
	BoxDepth   float64    `json:"box_depth"`
	Meta       *jsonMeta  `json:"meta,omitempty"`
	Rings      []jsonRing `json:"rings"`
}

type jsonMeta struct {
	Initials  string `json:"initials,omitempty"`
	Measured  string `json:"measured,omitempty"`
	StartDate int    `json:"start_date"`
	EndDate   int    `json:"end_date"`
}

type jsonRing struct {
	Width int    `json:"width"`
	Start int    `json:"start"`
	Case  string `json:"case"`
	Path  string `json:"path"`
}

// RenderJSON exports the planned panels, with the band outline of every
// ring, as a pretty-printed JSON document.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	c := l.Canvas
	out := jsonOutput{
		Width:          c.Width,
		Height:         c.Height,
		PhysicalWidth:  c.PhysicalWidth,
		PhysicalHeight: c.PhysicalHeight(),
		PhysicalUnits:  c.PhysicalUnits,
		Margin:         c.Margin,
		YScale:         l.YScale,
		Spacing:        l.Spacing,
		Panels:         make([]jsonPanel, len(l.Panels)),
	}
	for i, p := range l.Panels {
		out.Panels[i] = r.buildPanel(p)
	}
	return json.MarshalIndent(out, "", "  ")
}

func (r jsonRenderer) buildPanel(p layout.Panel) jsonPanel {
	jp := jsonPanel{
		Index:      p.Index,
		Name:       p.Name,
		Y:          p.Y,
		Total:      p.Total,
		PithOffset: p.PithOffset,
		XScale:     p.XScale,
		BoxDepth:   p.BoxDepth,
		Rings:      make([]jsonRing, len(p.Rings)),
	}
	for i, b := range arc.Bands(p.Rings, float64(p.PithOffset), p.BoxDepth) {
		jp.Rings[i] = jsonRing{
			Width: p.Rings[i].Width,
			Start: p.Rings[i].Start,
			Case:  b.Case.String(),
			Path:  b.Path.String(),
		}
	}
	if s, ok := r.series[p.Name]; ok {
		jp.Meta = &jsonMeta{
			Initials:  s.Initials,
			Measured:  s.Measured,
			StartDate: s.StartDate,
			EndDate:   s.EndDate(),
		}
	}
	return jp
}
