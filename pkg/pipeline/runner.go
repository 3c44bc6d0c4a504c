package pipeline

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/rwcore/pkg/cache"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/layout"
	"github.com/matzehuels/rwcore/pkg/core/render/treecore/sink"
	"github.com/matzehuels/rwcore/pkg/core/series"
	errs "github.com/matzehuels/rwcore/pkg/errors"
	"github.com/matzehuels/rwcore/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → plan → render pipeline.
func (r *Runner) Execute(ctx context.Context, inputs []Input, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}
	result.Stats.Inputs = len(inputs)

	loadStart := time.Now()
	ss, err := r.Load(ctx, inputs, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Series = ss
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Loaded = len(ss)
	for _, s := range ss {
		result.Stats.Diagnostics += len(s.Diagnostics)
	}

	r.Logger.Info("loaded series",
		"inputs", len(inputs),
		"loaded", len(ss),
		"diagnostics", result.Stats.Diagnostics,
		"duration", result.Stats.LoadTime)

	result.Layout = Plan(ss, opts)
	result.Stats.Drawn = len(result.Layout.Panels)
	if result.Stats.Drawn == 0 {
		r.Logger.Warn("no drawable series; the drawing will be empty")
	}
	r.Logger.Debug("planned layout",
		"panels", result.Stats.Drawn,
		"yscale", result.Layout.YScale)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result.Layout, ss, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load opens and parses inputs, at most opts.Jobs at a time. The result
// keeps input order and leaves out inputs that could not be opened, which
// are logged as file errors. Only context cancellation fails the load.
func (r *Runner) Load(ctx context.Context, inputs []Input, opts Options) ([]*series.Series, error) {
	r.applyLogger(&opts)
	opts.SetLoadDefaults()

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, len(inputs))
	start := time.Now()

	slots := make([]*series.Series, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := r.load(in, opts.Logger)
			if s != nil {
				hooks.OnSeriesParsed(gctx, s.Name, s.NRings(), len(s.Diagnostics))
			}
			slots[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		hooks.OnLoadComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}
	ss := slices.DeleteFunc(slots, func(s *series.Series) bool { return s == nil })
	hooks.OnLoadComplete(ctx, len(ss), time.Since(start), nil)
	return ss, nil
}

func (r *Runner) load(in Input, logger *log.Logger) *series.Series {
	msgs := in.Sink
	if msgs == nil {
		msgs = Messenger{Logger: logger, Label: in.Name}
	}

	rc, err := in.Open()
	if err != nil {
		series.Report(msgs, errs.Wrap(errs.ErrCodeFileNotFound, err, "File error %v", err))
		return nil
	}
	defer rc.Close()

	s := series.Parse(in.Name, rc, msgs)
	logger.Debug("parsed series",
		"series", s.Name,
		"rings", s.NRings(),
		"start", s.StartDate,
		"diagnostics", len(s.Diagnostics))
	return s
}

// RenderWithCacheInfo generates artifacts, serving converted formats from
// the cache where possible, and reports whether every converted format was
// a hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, ss []*series.Series, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks, cacheHooks := observability.Pipeline(), observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, hit, err := r.renderCached(ctx, l, ss, opts, cacheHooks)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, hit, err
}

func (r *Runner) renderCached(ctx context.Context, l layout.Layout, ss []*series.Series, opts Options, hooks observability.CacheHooks) (map[string][]byte, bool, error) {
	doc := sink.RenderSVG(l)
	svgHash := cache.Hash(doc)
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	converted := 0

	for _, format := range opts.Formats {
		if !Converted(format) {
			missing = append(missing, format)
			continue
		}
		converted++
		key := r.Keyer.ArtifactKey(svgHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			r.Logger.Debug("artifact cache hit", "format", format)
			hooks.OnCacheHit(ctx, format)
			artifacts[format] = data
			continue
		}
		hooks.OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}

	hits := converted - countConverted(missing)
	if len(missing) == 0 {
		return artifacts, converted > 0, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := renderDocument(ctx, l, doc, ss, renderOpts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		if !Converted(format) {
			continue
		}
		key := r.Keyer.ArtifactKey(svgHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.DefaultArtifactTTL); err != nil {
			r.Logger.Debug("artifact cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return artifacts, converted > 0 && hits == converted, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, ss []*series.Series, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, ss, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func countConverted(formats []string) int {
	n := 0
	for _, f := range formats {
		if Converted(f) {
			n++
		}
	}
	return n
}
