// Package cli provides the mazeglow command line.
package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"mazeglow/internal/config"
	"mazeglow/internal/sim"
)

// options carries the flag state shared by every subcommand.
type options struct {
	configPath string
	sets       []string
	flags      config.Config

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	o := &options{flags: config.DefaultConfig()}
	root := &cobra.Command{
		Use:   "mazeglow",
		Short: "Carve random mazes and watch a colour wave sweep through them",
		Long: `mazeglow grows a random spanning-tree maze on an odd lattice, then floods
it from the starting cell with a phase wave painted on a six-sector colour
wheel.

Settings resolve from defaults, then the TOML file given by --config, then
explicit flags, then repeated --set key=value overrides.`,
		SilenceUsage:      true,
		PersistentPreRunE: o.resolve,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "TOML config file")
	pf.StringArrayVar(&o.sets, "set", nil, "override a setting as key=value (w, h, seed, tps, burst, budget, scale, alternate)")
	o.flags.Bind(pf)

	root.AddCommand(
		newRunCmd(o),
		newTermCmd(o),
		newSnapshotCmd(o),
		newStatsCmd(o),
		newSweepCmd(o),
	)
	return root
}

// resolve layers defaults, the config file, changed flags and --set values.
func (o *options) resolve(cmd *cobra.Command, _ []string) error {
	log.SetFlags(0)
	log.SetPrefix("mazeglow: ")

	cfg := config.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg = cfg.FromMap(config.Changed(cmd.Flags()))
	overrides, err := config.ParseOverrides(o.sets)
	if err != nil {
		return err
	}
	cfg = cfg.FromMap(overrides)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.cfg = cfg
	return nil
}

// carvedBoard builds a board from the resolved config and carves it to the end.
func (o *options) carvedBoard() (*sim.Board, error) {
	board, err := sim.NewBoard(o.cfg)
	if err != nil {
		return nil, err
	}
	for board.Mode() == sim.ModeCarving {
		if err := board.RunUntilIdle(1 << 16); err != nil {
			return nil, fmt.Errorf("carving maze: %w", err)
		}
	}
	return board, nil
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		return 1
	}
	return 0
}
