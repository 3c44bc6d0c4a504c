// Package pkg provides the core libraries for rwcore tree-core drawings.
//
// # Overview
//
// rwcore turns dendrochronology ring-width (RW) measurement series into a
// drawing of tree cores: every annual ring becomes a concentric band around
// the pith, split into pale earlywood and a dark latewood edge. The pkg
// directory is organized into these areas:
//
//  1. [core/series] - Parsing RW files and windowing series
//  2. [core/render] - Layout, ring geometry and output sinks
//  3. [pipeline] - Orchestration (load → plan → render)
//  4. [cache] - Cache for converted PDF and PNG artifacts
//
// # Architecture
//
// The data flow through rwcore:
//
//	RW text files
//	     ↓
//	[core/series] (Parse, NewView)
//	     ↓
//	[render/treecore/layout] (Plan panels on the canvas)
//	     ↓
//	[render/treecore/arc] (latewood band outline per ring)
//	     ↓
//	[render/treecore/sink] (SVG, JSON, PDF, PNG)
//
// # Quick Start
//
// Parse a file and render it as SVG:
//
//	import (
//	    "github.com/matzehuels/rwcore/pkg/core/series"
//	    "github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
//	    "github.com/matzehuels/rwcore/pkg/core/render/treecore/sink"
//	)
//
//	// 1. Parse; problems go to the sink and onto s.Diagnostics
//	s := series.Parse("BK-22", f, series.SinkFunc(func(msg string) { log.Print(msg) }))
//
//	// 2. Keep the 50 rings nearest the bark
//	v := series.NewView(s, -50)
//
//	// 3. Plan the page
//	l := layout.Plan(layout.DefaultCanvas(), []series.View{v})
//
//	// 4. Render to SVG
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// [core/series] - The measurement series model. [series.Parse] never fails:
// malformed lines are reported and skipped, and a file without the 999
// terminator yields an empty series. Three views ([series.Full],
// [series.Leading], [series.Trailing]) select the rings to draw.
//
// [render/treecore/layout] - Stacks one panel per drawable view on a fixed
// [layout.Canvas], scaling each core to the usable width.
//
// [render/treecore/arc] - The geometry engine. Each ring's latewood is the
// area between two circles about the pith, clipped to the core box; the
// outer circle leaves the box through one of four edge combinations.
//
// [render/treecore/sink] - Output formats (SVG, JSON, PDF, PNG).
//
// [core/render] - Format conversion (SVG to PDF/PNG) through rsvg-convert.
//
// [pipeline] - Parallel, order-preserving loading of many files and cached
// rendering, used by the CLI.
//
// [observability] - Hooks for load, render and cache events.
//
// [errors] - Coded errors for series diagnostics and tool failures.
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test ./pkg/core/render/...        # Specific packages
//
// Tests that convert to PDF or PNG skip when rsvg-convert is not installed.
//
// [core/series]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/series
// [core/render]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/render
// [render/treecore/layout]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/render/treecore/layout
// [render/treecore/arc]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/render/treecore/arc
// [render/treecore/sink]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/render/treecore/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/errors
// [series.Parse]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/series#Parse
// [series.Full]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/series#Full
// [series.Leading]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/series#Leading
// [series.Trailing]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/series#Trailing
// [layout.Canvas]: https://pkg.go.dev/github.com/matzehuels/rwcore/pkg/core/render/treecore/layout#Canvas
package pkg
