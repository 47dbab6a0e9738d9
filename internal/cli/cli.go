// Package cli implements the minokit command-line interface.
//
// This package provides a small inspection surface over the shape library:
// listing the tetromino catalog, rendering pieces (optionally rotated),
// sampling random pieces, and combining two pieces on a shared grid. It is
// a debug aid over pkg/mino, not part of the library's semantic contract.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
//   - catalog: List the seven tetromino pieces
//   - show: Render one piece, optionally rotated
//   - random: Render uniformly sampled pieces (seedable)
//   - combine: Shift two pieces and merge them onto a common grid
//   - completion: Generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging and --theme
// for a TOML glyph theme.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/minokit/minokit/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "minokit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Minokit inspects and transforms tetromino shapes",
		Long:         `Minokit is a debug CLI for the mino shape library: it lists the tetromino catalog, renders pieces, samples random pieces, and combines shapes on a shared grid.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.combineCommand())
	root.AddCommand(c.completionCommand())

	return root
}
