package cli

import (
	"github.com/spf13/cobra"

	"mazeglow/internal/sim"
	"mazeglow/internal/term"
)

func newTermCmd(o *options) *cobra.Command {
	fit := true
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Animate the maze inside the terminal",
		Long: `Render the maze with half-block characters, two grid rows per terminal
line. The same keys as the window apply; H toggles the status line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := o.cfg
			if fit {
				size, err := term.ScreenSize()
				if err != nil {
					return err
				}
				fitted := term.FitSize(size.W, size.H)
				if !explicitSize(cmd, "width", "w") {
					cfg.Width = fitted.W
				}
				if !explicitSize(cmd, "height", "h") {
					cfg.Height = fitted.H
				}
			}
			board, err := sim.NewBoard(cfg)
			if err != nil {
				return err
			}
			p, err := term.New(board)
			if err != nil {
				return err
			}
			defer p.Close()
			return p.Run()
		},
	}
	cmd.Flags().BoolVar(&fit, "fit", fit, "size the grid to the terminal unless width or height is given")
	return cmd
}

// explicitSize reports whether a dimension was set by flag or --set.
func explicitSize(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		return true
	}
	sets, _ := cmd.Flags().GetStringArray("set")
	for _, kv := range sets {
		if len(kv) > len(key) && kv[:len(key)+1] == key+"=" {
			return true
		}
	}
	return false
}
