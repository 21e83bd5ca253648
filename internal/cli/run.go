package cli

import (
	"github.com/spf13/cobra"

	"mazeglow/internal/app"
	"mazeglow/internal/sim"
)

func newRunCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the maze in a window",
		Long: `Open an ebiten window that carves the maze in bursts and then animates the
wave.

Keys: R restart, Space pause, S skip carving, E hue mode, N single tick,
H parameter panel, Q or Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := sim.NewBoard(o.cfg)
			if err != nil {
				return err
			}
			return app.Run(board)
		},
	}
}
