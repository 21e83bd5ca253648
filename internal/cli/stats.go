package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"mazeglow/internal/maze"
	"mazeglow/internal/style"
	"mazeglow/internal/ui"
)

func newStatsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Carve a maze and report its structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := o.carvedBoard()
			if err != nil {
				return err
			}
			report := maze.Analyze(board.Grid(), board.Seed())
			w := cmd.OutOrStdout()
			styled := w == io.Writer(os.Stdout) && xterm.IsTerminal(int(os.Stdout.Fd()))
			writeReport(w, report, ui.Lines(board.Parameters()), styled)
			return nil
		},
	}
}

func writeReport(w io.Writer, r maze.Report, params []string, styled bool) {
	checks := []struct {
		label string
		ok    bool
	}{
		{"spanning tree", r.Perfect()},
		{"single component", r.Components == 1},
		{"cycle free", r.Edges == r.Open-r.Components},
		{"border clean", r.BorderClean},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "open cells        %d\n", r.Open)
	fmt.Fprintf(&b, "edges             %d\n", r.Edges)
	fmt.Fprintf(&b, "reachable         %d\n", r.Reachable)
	fmt.Fprintf(&b, "components        %d\n", r.Components)
	for _, c := range checks {
		mark := "ok"
		if !c.ok {
			mark = "FAIL"
		}
		if styled {
			mark = style.Check(c.ok)
		}
		fmt.Fprintf(&b, "%-17s %s\n", c.label, mark)
	}

	if !styled {
		fmt.Fprint(w, "Maze\n"+b.String()+"\n"+strings.Join(params, "\n")+"\n")
		return
	}
	fmt.Fprintln(w, style.Header.Render("Maze"))
	fmt.Fprintln(w, style.Panel.Render(strings.TrimRight(b.String(), "\n")))
	for _, line := range params {
		if strings.HasPrefix(line, " ") {
			fmt.Fprintln(w, style.Dim.Render(line))
			continue
		}
		fmt.Fprintln(w, style.Bold.Render(line))
	}
}
