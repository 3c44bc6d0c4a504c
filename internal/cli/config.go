package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	errs "github.com/matzehuels/rwcore/pkg/errors"
)

// fileConfig mirrors the draw flags that may be set in config.toml:
//
//	maxlength = -50
//	format    = "svg,pdf"
//	output    = "cores"
//	scale     = 3.0
//	jobs      = 4
//	no_cache  = false
type fileConfig struct {
	MaxLength int     `toml:"maxlength"`
	Format    string  `toml:"format"`
	Output    string  `toml:"output"`
	Scale     float64 `toml:"scale"`
	Jobs      int     `toml:"jobs"`
	NoCache   bool    `toml:"no_cache"`

	md toml.MetaData
}

// loadConfig reads the settings file at path. With explicit false the
// default location is being probed and a missing file is not an error.
// A nil config means there was nothing to read.
func loadConfig(path string, explicit bool, logger *log.Logger) (*fileConfig, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
	}

	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "config %s", path)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "key", key.String(), "file", path)
	}
	cfg.md = md
	logger.Debug("loaded config", "file", path)
	return &cfg, nil
}

// apply copies every key set in the file onto opts unless the matching flag
// was given explicitly.
func (cfg *fileConfig) apply(flags *pflag.FlagSet, opts *drawOpts) {
	if cfg == nil {
		return
	}
	set := func(key, flag string) bool {
		return cfg.md.IsDefined(key) && !flags.Changed(flag)
	}
	if set("maxlength", "maxlength") {
		opts.maxLength = cfg.MaxLength
	}
	if set("format", "format") {
		opts.formats = cfg.Format
	}
	if set("output", "output") {
		opts.output = cfg.Output
	}
	if set("scale", "scale") {
		opts.scale = cfg.Scale
	}
	if set("jobs", "jobs") {
		opts.jobs = cfg.Jobs
	}
	if set("no_cache", "no-cache") {
		opts.noCache = cfg.NoCache
	}
}
