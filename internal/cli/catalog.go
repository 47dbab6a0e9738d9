package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minokit/minokit/pkg/mino/tetromino"
)

// catalogCommand creates the catalog command listing the tetromino pieces.
func (c *CLI) catalogCommand() *cobra.Command {
	var themePath string
	var plain bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the seven tetromino pieces",
		Example: `  # List all pieces with their grids
  minokit catalog

  # Monochrome output with a custom glyph theme
  minokit catalog --plain --theme theme.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := resolveTheme(themePath)
			if err != nil {
				return err
			}

			pieces := tetromino.Pieces()
			c.Logger.Debugf("catalog holds %d pieces", len(pieces))

			for i, p := range pieces {
				if i > 0 {
					fmt.Println()
				}
				size := p.Shape.Size()
				printHeader("%s", p.Name)
				printKeyValue("Color", p.Color.String())
				printKeyValue("Size", fmt.Sprintf("%dx%d", size.Width, size.Height))
				printKeyValue("Blocks", fmt.Sprintf("%d", p.Shape.BlockCount()))
				printShape(p.Shape, th, !plain)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&themePath, "theme", "", "TOML glyph theme file")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colored output")

	return cmd
}

// resolveTheme loads the theme at path, or the default theme if path is empty.
func resolveTheme(path string) (theme, error) {
	if path == "" {
		return defaultTheme(), nil
	}
	return loadTheme(path)
}
