package sink

import (
	"context"

	"github.com/matzehuels/rwcore/pkg/core/render"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svg []byte
}

// WithPDFSource converts doc, an SVG already rendered from the same
// layout, instead of rendering it again.
func WithPDFSource(doc []byte) PDFOption {
	return func(r *pdfRenderer) { r.svg = doc }
}

// RenderPDF renders the layout as PDF via SVG conversion.
func RenderPDF(ctx context.Context, l layout.Layout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.svg == nil {
		r.svg = RenderSVG(l)
	}
	return render.ToPDF(ctx, r.svg)
}
