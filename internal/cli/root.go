// Package cli implements the flowbox command-line interface.
//
// The CLI loads layout scenes from TOML files and exposes three commands:
//
//   - render: lay a scene out and write a PNG preview
//   - measure: print the size a scene's layout wants at one or more widths
//   - rows: dump the flow layout's row partition for inspection
//
// All commands support --verbose (-v) for debug-level logging; loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the flowbox CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "flowbox",
		Short:        "flowbox previews box-layout algorithms",
		Long:         `flowbox lays out scene files with the flow-wrap or centered-distribution algorithm and renders the result for inspection.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newMeasureCmd())
	root.AddCommand(newRowsCmd())

	return root.ExecuteContext(context.Background())
}
