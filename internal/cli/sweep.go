package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mazeglow/internal/sim"
)

func newSweepCmd(o *options) *cobra.Command {
	count := 16
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Carve mazes for a range of seeds and tabulate them",
		Long: `Carve one maze per seed, starting at the configured seed, and print one row
per maze: origin, ticks spent carving, open cells and whether the result is a
spanning tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			seeds := make([]int64, count)
			for i := range seeds {
				seeds[i] = o.cfg.Seed + int64(i)
			}

			start := time.Now()
			results := sim.Sweep(o.cfg, seeds)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEED\tORIGIN\tTICKS\tOPEN\tPERFECT\tTIME")
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(tw, "%d\t-\t-\t-\t-\t%v\n", r.Seed, r.Err)
					continue
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%t\t%s\n",
					r.Seed, r.Origin, r.Ticks, r.Report.Open, r.Report.Perfect(), r.Elapsed.Round(time.Millisecond))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d mazes in %s\n", len(results), time.Since(start).Round(time.Millisecond))
			if failed > 0 {
				return fmt.Errorf("%d of %d seeds failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", count, "number of consecutive seeds to carve")
	return cmd
}
