package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/minokit/minokit/pkg/mino/tetromino"
)

// randomCommand creates the random command for sampling pieces from the
// catalog.
func (c *CLI) randomCommand() *cobra.Command {
	var count int
	var seed int64
	var themePath string
	var plain bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Render uniformly sampled tetromino pieces",
		Long: `Sample pieces from the catalog, each of the seven equally likely.

With --seed the sequence is reproducible; without it the generator is seeded
from the current time.`,
		Example: `  # One random piece
  minokit random

  # A reproducible bag of five
  minokit random --count 5 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := resolveTheme(themePath)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			src := rand.New(rand.NewSource(seed))
			c.Logger.Debugf("sampling %d pieces with seed %d", count, seed)

			prog := newProgress(c.Logger)
			for i := 0; i < count; i++ {
				if i > 0 {
					fmt.Println()
				}
				p := tetromino.RandomPiece(src)
				printHeader("%s", p.Name)
				printDetail("%s, %d blocks", p.Color, p.Shape.BlockCount())
				printShape(p.Shape, th, !plain)
			}
			prog.done(fmt.Sprintf("Sampled %d pieces", count))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of pieces to sample")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().StringVar(&themePath, "theme", "", "TOML glyph theme file")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colored output")

	return cmd
}
