// Package cli implements the stackfall command-line interface.
//
// The CLI is developer tooling around the engine packages: it inspects the
// seven piece shapes and runs headless gravity simulations against a fresh
// board. It is a reference driver for the engine, not part of the engine
// API — importers drive pkg/grid and pkg/tetromino directly.
//
// # Commands
//
//   - shapes: print each piece's four rotation states as colored blocks
//   - simulate: drop a sequence of pieces onto a board and print the result
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command sees the same
// configuration.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stackfall/stackfall/pkg/buildinfo"
)

// Execute runs the stackfall CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag into a charmbracelet logger in
// PersistentPreRun and attaches it to the context, so subcommands retrieve
// it with loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "stackfall",
		Short:        "Stackfall inspects and simulates the falling-block engine",
		Long:         `Stackfall is debug tooling for the falling-block game-state engine: it prints piece shapes and their rotation states, and runs headless gravity simulations against a fresh board.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newShapesCmd())
	root.AddCommand(newSimulateCmd())

	return root.ExecuteContext(ctx)
}
