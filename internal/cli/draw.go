package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rwcore/pkg/pipeline"
)

// drawOpts holds the command-line flags for the draw command.
type drawOpts struct {
	maxLength int     // ring window: first n when positive, last -n when negative
	output    string  // output file (single format) or base path (multiple)
	formats   string  // comma separated output formats
	scale     float64 // PNG scale factor
	jobs      int     // parallel parse limit
	noCache   bool    // disable the artifact cache
	config    string  // settings file
}

// target is one artifact destination. An empty path means stdout.
type target struct {
	format string
	path   string
}

// drawCommand creates the draw command.
//
// With a single format and no --output the document goes to stdout, so
//
//	rwcore draw -m -50 BK-22.rw BK-102.rw > cores.svg
//
// behaves like a filter. Several formats are written next to a shared base
// path instead (cores.svg, cores.pdf).
func (c *CLI) drawCommand() *cobra.Command {
	opts := drawOpts{}

	cmd := &cobra.Command{
		Use:   "draw [flags] rwfile...",
		Short: "Draw ring-width files as stacked tree cores",
		Long: `Draw reads each RW file, labels it with the file's base name and stacks
the cores on one page. Files that cannot be opened are reported and skipped;
problems inside a file are reported and the rest of the series is drawn.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			path, explicit := opts.config, opts.config != ""
			if !explicit {
				path, _ = configPath()
			}
			cfg, err := loadConfig(path, explicit, logger)
			if err != nil {
				return err
			}
			cfg.apply(cmd.Flags(), &opts)

			return c.runDraw(cmd.Context(), cmd.OutOrStdout(), args, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.maxLength, "maxlength", "m", 0, "draw only the first n rings, or the last n when negative")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (default 2)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "files parsed in parallel (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the artifact cache")
	cmd.Flags().StringVar(&opts.config, "config", "", "settings file (default $XDG_CONFIG_HOME/rwcore/config.toml)")

	return cmd
}

func (c *CLI) runDraw(ctx context.Context, stdout io.Writer, files []string, opts *drawOpts) error {
	logger := loggerFromContext(ctx)

	popts := pipeline.Options{
		BlockSize: opts.maxLength,
		Jobs:      opts.jobs,
		Formats:   pipeline.ParseFormats(opts.formats),
		Scale:     opts.scale,
		Logger:    logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	inputs := make([]pipeline.Input, len(files))
	for i, f := range files {
		inputs[i] = pipeline.FileInput(f)
	}

	var spin *Spinner
	if slices.ContainsFunc(popts.Formats, pipeline.Converted) && isatty.IsTerminal(os.Stderr.Fd()) {
		spin = newSpinner(ctx, os.Stderr, "Drawing cores...")
		spin.Start()
	}
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, inputs, popts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Drew %d of %d series", result.Stats.Drawn, result.Stats.Inputs))
	if result.CacheInfo.RenderHit {
		logger.Debug("converted artifacts served from cache")
	}

	targets := outputTargets(opts.output, files[0], popts.Formats)
	for _, t := range targets {
		if err := writeArtifact(stdout, t, result.Artifacts[t.format]); err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", t.format, len(result.Artifacts[t.format]))
	}

	if len(targets) == 1 && targets[0].path == "" {
		return nil
	}
	printSuccess("Drew %d of %d series", result.Stats.Drawn, result.Stats.Inputs)
	printStats(result.Stats, result.CacheInfo.RenderHit)
	for _, t := range targets {
		printFile(t.path)
	}
	return nil
}

// outputTargets decides where each format goes. A single format is written
// to output, or stdout when output is empty; several formats share the base
// path derived from output or, failing that, from the first input.
func outputTargets(output, firstInput string, formats []string) []target {
	if len(formats) == 1 {
		return []target{{format: formats[0], path: output}}
	}
	base := basePath(output, firstInput)
	targets := make([]target, len(formats))
	for i, f := range formats {
		targets[i] = target{format: f, path: base + "." + f}
	}
	return targets
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifact(stdout io.Writer, t target, data []byte) error {
	if t.path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", t.format, err)
	}
	return nil
}
