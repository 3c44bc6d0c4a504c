package sink

import (
	"context"

	"github.com/matzehuels/rwcore/pkg/core/render"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
)

// DefaultPNGScale renders PNG output at twice the nominal resolution.
const DefaultPNGScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svg   []byte
	scale float64
}

// WithPNGSource converts doc, an SVG already rendered from the same
// layout, instead of rendering it again.
func WithPNGSource(doc []byte) PNGOption {
	return func(r *pngRenderer) { r.svg = doc }
}

// WithScale sets the PNG scale factor. Non-positive values keep the default.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG renders the layout as PNG via SVG conversion.
func RenderPNG(ctx context.Context, l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.svg == nil {
		r.svg = RenderSVG(l)
	}
	return render.ToPNG(ctx, r.svg, r.scale)
}
