package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/sink"
	"github.com/matzehuels/rwcore/pkg/core/series"
)

// Views wraps every series in the view selected by blockSize.
func Views(ss []*series.Series, blockSize int) []series.View {
	views := make([]series.View, len(ss))
	for i, s := range ss {
		views[i] = series.NewView(s, blockSize)
	}
	return views
}

// Plan lays out the views of ss on the canvas of opts. Series with nothing
// to draw are left out.
func Plan(ss []*series.Series, opts Options) layout.Layout {
	opts.SetRenderDefaults()
	return layout.Plan(opts.Canvas, Views(ss, opts.BlockSize))
}

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l layout.Layout, ss []*series.Series, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return renderDocument(ctx, l, sink.RenderSVG(l), ss, opts)
}

// renderDocument generates artifacts from doc, the SVG of l. PDF and PNG
// are converted from doc rather than from a second rendering.
func renderDocument(ctx context.Context, l layout.Layout, doc []byte, ss []*series.Series, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = doc
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONSeries(ss...))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, sink.WithPDFSource(doc))
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, l, sink.WithPNGSource(doc), sink.WithScale(opts.Scale))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
