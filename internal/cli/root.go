// Package cli implements the segplot command line.
//
// segplot takes exactly one argument, the segment file. It runs the solver
// on it, parses both the segments and the solver output, and opens the
// terminal viewer. Settings come from segplot.toml in the working
// directory when present.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"segplot/internal/config"
	"segplot/internal/geom"
	"segplot/internal/pipeline"
	"segplot/internal/solver"
	"segplot/internal/tui"
)

const appName = "segplot"

// version is injected at build time via -ldflags.
var version = "dev"

// Execute runs the segplot command with os.Args and returns the first error.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr, nil).ExecuteContext(ctx)
}

// NewRootCommand builds the root command. Logs go to logOut. newViewer may
// be nil to use the terminal viewer.
func NewRootCommand(logOut io.Writer, newViewer func(cfg config.Config) pipeline.Viewer) *cobra.Command {
	if newViewer == nil {
		newViewer = func(cfg config.Config) pipeline.Viewer { return tui.NewViewer(cfg.Style) }
	}
	return &cobra.Command{
		Use:           appName + " <segment-file>",
		Short:         "Plot line segments and the intersections the solver finds",
		Long:          `segplot runs the sweep-line solver on a segment file and shows the segments together with the reported intersection points in a terminal plot.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.FileName)
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logger := newLogger(logOut, level)
			logger.Debug("configuration", "solver", cfg.Solver.Path, "output", cfg.Solver.Output, "data_dir", cfg.DataDir, "style", cfg.Style)

			s := solver.New(cfg.Solver.Path, cfg.Solver.Output)
			s.Stdout = cmd.OutOrStdout()
			s.Stderr = cmd.ErrOrStderr()

			runner := pipeline.NewRunner(s, newViewer(cfg), geom.NewLocator(cfg.DataDir), cfg.Solver.Output, cfg.Style, logger)
			return runner.Run(cmd.Context(), args[0])
		},
	}
}
