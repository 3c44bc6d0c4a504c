package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/rwcore/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The persistent --verbose (-v) flag switches the shared logger to debug
// level before any subcommand runs, and the logger is attached to the
// command context for loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "rwcore draws tree cores from ring-width files",
		Long: `rwcore reads dendrochronology ring-width (RW) measurement files and draws
each series as a stylised tree-core cross-section: concentric rings split
into pale earlywood and dark latewood, one core per file, stacked on a
single page.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.drawCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
