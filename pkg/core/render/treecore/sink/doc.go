// Package sink turns a planned [layout.Layout] into output documents.
//
// # Overview
//
// A "sink" takes the stacked panels computed by the layout package and
// serialises them. This package provides:
//
//   - SVG: the core drawing itself
//   - JSON: panel geometry and per-ring band outlines for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] writes one group per panel, translated to the panel offset.
// Inside it a label group scaled by the layout's YScale holds the series name,
// right aligned against the margin, and a core group scaled by the panel's
// XScale holds the earlywood rectangle followed by one latewood path per
// ring:
//
//	<g transform="translate(150, 0)">
//	  <g transform="scale(1)"><text ...>BK-22</text></g>
//	  <g transform="scale(2.48)">
//	    <rect x="0.0000" y="0.0000" width="1193.0000" height="60.3000" fill="goldenrod"/>
//	    <path d="M29.25,0 H39 A39,39 0 0,1 ..." stroke="none" fill="saddlebrown"/>
//	  </g>
//	</g>
//
// The two tones and the label font are fixed: [DefaultEarlywood],
// [DefaultLatewood] and [DefaultFont].
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first and convert it via
// [render.ToPDF] and [render.ToPNG]. Callers that already hold the SVG pass
// it with [WithPDFSource] or [WithPNGSource].
//
// [layout.Layout]: github.com/matzehuels/rwcore/pkg/core/render/treecore/layout.Layout
// [render.ToPDF]: github.com/matzehuels/rwcore/pkg/core/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/rwcore/pkg/core/render.ToPNG
package sink
