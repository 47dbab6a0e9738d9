package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minokit/minokit/pkg/mino/tetromino"
	"github.com/minokit/minokit/pkg/mino/transform"
)

// showCommand creates the show command for rendering a single piece.
func (c *CLI) showCommand() *cobra.Command {
	var rotations int
	var themePath string
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <piece>",
		Short: "Render one tetromino piece, optionally rotated",
		Long: `Render a single piece from the catalog.

The piece is addressed by its letter (I, J, T, O, Z, L, S, case-insensitive).
--rotate applies that many quarter-turns; four turns reproduce the original.`,
		Example: `  # Show the S piece
  minokit show s

  # Show the I piece rotated once (horizontal bar)
  minokit show I --rotate 1`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: tetromino.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := resolveTheme(themePath)
			if err != nil {
				return err
			}
			piece, ok := tetromino.ByName(args[0])
			if !ok {
				return fmt.Errorf("unknown piece %q (have %v)", args[0], tetromino.Names())
			}
			if rotations < 0 {
				return fmt.Errorf("--rotate must be non-negative, got %d", rotations)
			}

			shape := piece.Shape
			for i := 0; i < rotations%4; i++ {
				shape = transform.Rotate90(shape)
			}
			c.Logger.Debugf("piece %s after %d quarter-turns", piece.Name, rotations%4)

			size := shape.Size()
			printHeader("%s", piece.Name)
			printKeyValue("Color", piece.Color.String())
			printKeyValue("Size", fmt.Sprintf("%dx%d", size.Width, size.Height))
			printShape(shape, th, !plain)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rotations, "rotate", "r", 0, "number of quarter-turns to apply")
	cmd.Flags().StringVar(&themePath, "theme", "", "TOML glyph theme file")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colored output")

	return cmd
}
