package cli

import (
	"fmt"
	"image"
	"log"

	"github.com/spf13/cobra"

	"mazeglow/internal/render"
	"mazeglow/internal/sim"
)

const sheetGap = 2

type snapshotOptions struct {
	out    string
	ticks  int
	frames int
	every  int
}

func newSnapshotCmd(o *options) *cobra.Command {
	so := &snapshotOptions{out: "mazeglow.png", frames: 1, every: 30}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Carve a maze and save the wave as a PNG",
		Long: `Carve a maze to completion, run --ticks wave steps and write the painted
grid scaled by the configured scale. With --frames greater than one the
output is a contact sheet of frames taken --every ticks apart, left to right.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := so.validate(); err != nil {
				return err
			}
			board, err := o.carvedBoard()
			if err != nil {
				return err
			}
			img, err := so.render(board)
			if err != nil {
				return err
			}
			if err := render.WritePNG(so.out, img, o.cfg.Scale); err != nil {
				return err
			}
			log.Printf("wrote %s after %d ticks", so.out, board.Ticks())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&so.out, "output", "o", so.out, "PNG file to write")
	f.IntVar(&so.ticks, "ticks", so.ticks, "wave steps before the first frame")
	f.IntVar(&so.frames, "frames", so.frames, "number of frames in the contact sheet")
	f.IntVar(&so.every, "every", so.every, "wave steps between frames")
	return cmd
}

func (so *snapshotOptions) validate() error {
	switch {
	case so.ticks < 0:
		return fmt.Errorf("--ticks must not be negative, got %d", so.ticks)
	case so.frames < 1:
		return fmt.Errorf("--frames must be at least 1, got %d", so.frames)
	case so.every < 0:
		return fmt.Errorf("--every must not be negative, got %d", so.every)
	}
	return nil
}

// render advances the carved board and paints the requested frames.
func (so *snapshotOptions) render(board *sim.Board) (image.Image, error) {
	if err := propagate(board, so.ticks); err != nil {
		return nil, err
	}
	if so.frames == 1 {
		return render.Image(board.Grid(), board.HueMode()), nil
	}
	frames := make([]image.Image, 0, so.frames)
	for i := 0; i < so.frames; i++ {
		if i > 0 {
			if err := propagate(board, so.every); err != nil {
				return nil, err
			}
		}
		frames = append(frames, render.Image(board.Grid(), board.HueMode()))
	}
	return render.ContactSheet(frames, sheetGap)
}

func propagate(board *sim.Board, n int) error {
	for i := 0; i < n; i++ {
		if err := board.Propagate(); err != nil {
			return err
		}
	}
	return nil
}
