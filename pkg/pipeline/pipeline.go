// Package pipeline turns ring-width files into finished core drawings.
//
// This package implements the load → plan → render pipeline behind the CLI.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: open and parse every input, in parallel, keeping input order
//  2. Plan: wrap each series in a view and lay the views out on the canvas
//  3. Render: emit the requested formats (SVG, JSON, PDF, PNG)
//
// Parse problems never stop a run. They are logged per series through a
// [Messenger] and recorded on the series; an input that cannot be opened is
// logged and skipped.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	inputs := []pipeline.Input{pipeline.FileInput("BK-22.rw")}
//	result, err := runner.Execute(ctx, inputs, pipeline.Options{BlockSize: -50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	ss, err := runner.Load(ctx, inputs, opts)
//	l := pipeline.Plan(ss, opts)
//	artifacts, err := runner.Render(ctx, l, ss, opts)
package pipeline

import (
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rwcore/pkg/cache"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/sink"
	"github.com/matzehuels/rwcore/pkg/core/series"
	errs "github.com/matzehuels/rwcore/pkg/errors"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Converted reports whether format is produced by an external converter
// and therefore worth caching.
func Converted(format string) bool {
	return format == FormatPDF || format == FormatPNG
}

// Options contains all configuration for the pipeline.
type Options struct {
	// BlockSize limits each drawing to its first BlockSize rings when
	// positive, its last -BlockSize rings when negative, and draws the
	// whole series when zero.
	BlockSize int `json:"maxlength,omitempty" toml:"maxlength"`

	// Jobs bounds the number of inputs parsed at once.
	Jobs int `json:"jobs,omitempty" toml:"jobs"`

	// Render options
	Formats []string      `json:"formats,omitempty" toml:"-"`
	Scale   float64       `json:"scale,omitempty" toml:"scale"`
	Canvas  layout.Canvas `json:"-" toml:"-"`

	Logger *log.Logger `json:"-" toml:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Series holds every input that could be opened, in input order,
	// including empty ones.
	Series []*series.Series

	// Layout is the planned drawing.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Inputs      int
	Loaded      int
	Drawn       int
	Diagnostics int
	LoadTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // every converted artifact came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// ValidateAndSetDefaults applies defaults and checks the options. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLoadDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLoadDefaults sets default values for loading.
func (o *Options) SetLoadDefaults() {
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale <= 0 {
		o.Scale = sink.DefaultPNGScale
	}
	if o.Canvas == (layout.Canvas{}) {
		o.Canvas = layout.DefaultCanvas()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	c := o.Canvas
	if c.Width <= c.Margin || c.Height <= 0 || c.PanelPitch <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "invalid canvas %gx%g (margin %g, pitch %g)",
			c.Width, c.Height, c.Margin, c.PanelPitch)
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for a converted format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
